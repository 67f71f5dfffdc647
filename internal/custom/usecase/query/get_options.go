package query

import "github.com/vastrika/storefront/internal/custom/domain"

// GetOptionsHandler serves the static design option catalogs.
type GetOptionsHandler struct{}

func NewGetOptionsHandler() *GetOptionsHandler {
	return &GetOptionsHandler{}
}

func (h *GetOptionsHandler) Handle() domain.DesignOptions {
	return domain.Options()
}
