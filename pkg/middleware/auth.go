package middleware

import (
	"net/http"

	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Identity middleware reads the identity headers injected by the upstream
// identity provider. Requests without a valid user id are rejected.
func Identity(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userIDHeader := r.Header.Get("X-User-ID")
			if userIDHeader == "" {
				utils.ResponseUnauthorized(w, "Missing identity")
				return
			}

			userID, err := uuid.Parse(userIDHeader)
			if err != nil {
				logger.Warn("Invalid user id header",
					zap.String("user_id", userIDHeader),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid identity")
				return
			}

			role := r.Header.Get("X-User-Role")
			if role != utils.RoleStaff {
				role = utils.RoleCustomer
			}

			ctx := utils.SetUserContext(r.Context(), userID, role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Staff middleware requires the staff role on top of Identity
func Staff(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			role, _ := utils.GetRoleFromContext(r.Context())
			if role != utils.RoleStaff {
				logger.Warn("Staff check: non-staff access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Staff access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
