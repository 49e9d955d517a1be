package composers

import (
	"github.com/fripon-labs/fripon-cli/internal/composers/denim"
	"github.com/fripon-labs/fripon-cli/internal/composers/knitwear"
)

// RegisterDefaults registers all built-in composers with the registry.
// Call this during application initialisation.
func RegisterDefaults(r *Registry) error {
	if err := r.Register(denim.New()); err != nil {
		return err
	}
	return r.Register(knitwear.New())
}
