package usecase

import (
	"strings"

	"github.com/sellerdesk/sellerdesk/internal/domain/model"
)

// DefaultPageSize applies when the UI did not pick a page size.
const DefaultPageSize = 20

// RawFilterInput is filter state exactly as captured from the UI, before any
// normalization.
type RawFilterInput struct {
	Page              int
	PageSize          int
	FromDate          string
	ToDate            string
	SearchTerm        string
	MarketplaceSource string
	SortBy            string
}

// BuildFilterSet normalizes raw UI filter input into a canonical parameter
// set. Page, page size and sort order always carry a value; date range and
// search term survive only if non-empty after trimming; the "ALL"
// marketplace sentinel is stripped so absence means no filter. The function
// is pure, so identical input always yields structurally equal output.
func BuildFilterSet(raw RawFilterInput, tab model.Tab) model.FilterSet {
	fs := model.FilterSet{
		Page:       raw.Page,
		PageSize:   raw.PageSize,
		FromDate:   strings.TrimSpace(raw.FromDate),
		ToDate:     strings.TrimSpace(raw.ToDate),
		SearchTerm: strings.TrimSpace(raw.SearchTerm),
		SortBy:     strings.TrimSpace(raw.SortBy),
		Tab:        tab,
	}

	if fs.Page < 1 {
		fs.Page = 1
	}
	if fs.PageSize <= 0 {
		fs.PageSize = DefaultPageSize
	}
	if fs.SortBy == "" {
		fs.SortBy = model.SortLastModified
	}

	if source := strings.TrimSpace(raw.MarketplaceSource); source != "" && !strings.EqualFold(source, model.MarketplaceAll) {
		fs.MarketplaceSource = source
	}

	return fs
}
