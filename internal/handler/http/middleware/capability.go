package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/staff"
	"github.com/cmlabs-hris/rota-backend-go/internal/handler/http/response"
)

// RequireCapability checks the caller's role against staff.RoleCapabilities.
// It must run after AuthRequired.
func RequireCapability(capability staff.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if !staff.HasCapability(identity.Role, capability) {
				if capability == staff.CapabilityStaffManage || capability == staff.CapabilityDataWipe {
					response.HandleError(w, staff.ErrOwnerAccessRequired)
					return
				}
				response.HandleError(w, staff.ErrInsufficientPermission)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
