package usecase

import (
	"go.uber.org/fx"

	"github.com/sellerdesk/sellerdesk/internal/config"
)

// Module provides core dashboard use cases to the fx container.
var Module = fx.Provide(newImportValidator)

type validatorParams struct {
	fx.In

	Config *config.Config
}

func newImportValidator(p validatorParams) *CSVImportValidator {
	return NewCSVImportValidator(p.Config.MaxImportBytes)
}
