package http

import (
	"time"

	"inventory-management/internal/item"
	"inventory-management/pkg/paginator"
)

// --- Request DTOs ---

type converterReq struct {
	Name     string   `json:"name"`
	Multiply *float64 `json:"multiply"`
}

func toConverterInputs(reqs []converterReq) []item.ConverterInput {
	if reqs == nil {
		return nil
	}
	out := make([]item.ConverterInput, len(reqs))
	for i, r := range reqs {
		out[i] = item.ConverterInput{Name: r.Name, Multiply: r.Multiply}
	}
	return out
}

type createReq struct {
	Code                string         `json:"code"`
	Name                string         `json:"name"`
	ChartOfAccount      string         `json:"chartOfAccount"`
	HasProductionNumber bool           `json:"hasProductionNumber"`
	HasExpiryDate       bool           `json:"hasExpiryDate"`
	Unit                string         `json:"unit"`
	Converter           []converterReq `json:"converter"`
}

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		Code:                r.Code,
		Name:                r.Name,
		ChartOfAccount:      r.ChartOfAccount,
		HasProductionNumber: r.HasProductionNumber,
		HasExpiryDate:       r.HasExpiryDate,
		Unit:                r.Unit,
		Converter:           toConverterInputs(r.Converter),
	}
}

// ---

type listReq struct {
	Page       int    `form:"page"`
	PageSize   int    `form:"pageSize"`
	IsArchived *bool  `form:"isArchived"`
	Search     string `form:"search"`
}

func (r listReq) toInput() item.ListItemsInput {
	return item.ListItemsInput{
		Pagination: paginator.Query{Page: r.Page, PageSize: r.PageSize},
		IsArchived: r.IsArchived,
		Search:     r.Search,
	}
}

// ---

// updateReq is a patch: absent keys stay nil and leave the stored value as is.
type updateReq struct {
	ID                  string          `json:"-"` // populated from URI param
	Code                *string         `json:"code"`
	Name                *string         `json:"name"`
	ChartOfAccount      *string         `json:"chartOfAccount"`
	HasProductionNumber *bool           `json:"hasProductionNumber"`
	HasExpiryDate       *bool           `json:"hasExpiryDate"`
	Unit                *string         `json:"unit"`
	Converter           *[]converterReq `json:"converter"`
}

func (r updateReq) toInput() item.UpdateItemInput {
	in := item.UpdateItemInput{
		ID:                  r.ID,
		Code:                r.Code,
		Name:                r.Name,
		ChartOfAccount:      r.ChartOfAccount,
		HasProductionNumber: r.HasProductionNumber,
		HasExpiryDate:       r.HasExpiryDate,
		Unit:                r.Unit,
	}
	if r.Converter != nil {
		cs := toConverterInputs(*r.Converter)
		if cs == nil {
			cs = []item.ConverterInput{}
		}
		in.Converter = &cs
	}
	return in
}

// --- Response DTOs ---

type converterResp struct {
	Name     string  `json:"name"`
	Multiply float64 `json:"multiply"`
}

type itemResp struct {
	ID                  string          `json:"_id"`
	Code                string          `json:"code"`
	Name                string          `json:"name"`
	ChartOfAccount      string          `json:"chartOfAccount"`
	HasProductionNumber bool            `json:"hasProductionNumber"`
	HasExpiryDate       bool            `json:"hasExpiryDate"`
	Unit                string          `json:"unit"`
	Converter           []converterResp `json:"converter"`
	IsArchived          bool            `json:"isArchived"`
	CreatedAt           time.Time       `json:"createdAt"`
	CreatedByID         string          `json:"createdBy_id"`
	UpdatedAt           *time.Time      `json:"updatedAt,omitempty"`
	UpdatedByID         string          `json:"updatedBy_id,omitempty"`
}

func newItemResp(it item.Item) itemResp {
	converter := make([]converterResp, len(it.Converter))
	for i, c := range it.Converter {
		converter[i] = converterResp{Name: c.Name, Multiply: c.Multiply}
	}
	return itemResp{
		ID:                  it.ID,
		Code:                it.Code,
		Name:                it.Name,
		ChartOfAccount:      it.ChartOfAccount,
		HasProductionNumber: it.HasProductionNumber,
		HasExpiryDate:       it.HasExpiryDate,
		Unit:                it.Unit,
		Converter:           converter,
		IsArchived:          it.IsArchived,
		CreatedAt:           it.CreatedAt,
		CreatedByID:         it.CreatedByID,
		UpdatedAt:           it.UpdatedAt,
		UpdatedByID:         it.UpdatedByID,
	}
}

type createResp struct {
	ID string `json:"_id"`
}

func (h *handler) newCreateResp(out item.CreateItemOutput) createResp {
	return createResp{ID: out.Item.ID}
}

func (h *handler) newListResp(out item.ListItemsOutput) []itemResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return items
}

func (h *handler) newDetailResp(out item.DetailItemOutput) itemResp {
	return newItemResp(out.Item)
}

// listResp documents the list envelope for swagger.
type listResp struct {
	Data       []itemResp           `json:"data"`
	Pagination paginator.Pagination `json:"pagination"`
}

// detailResp documents the detail envelope for swagger.
type detailResp struct {
	Data itemResp `json:"data"`
}
