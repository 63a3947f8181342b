package http

import (
	"items-fixture-api/internal/catalog"
	"items-fixture-api/pkg/response"
)

// --- Request DTOs ---

// filterReq is the ItemFilter wire shape. A missing item_ids key and an
// empty list are both valid; anything that is not a list of strings is a
// binding error.
type filterReq struct {
	ItemIDs []string `json:"item_ids"`
}

func (r filterReq) toInput() catalog.FilterInput {
	return catalog.FilterInput{ItemIDs: r.ItemIDs}
}

// detailReq binds the integer catalog key from the URI.
type detailReq struct {
	Key int `uri:"id" binding:"required"`
}

// --- Response DTOs ---

// itemResp is the Item wire shape. Field names and formats follow the
// published schema: timestamps as RFC3339, dates as YYYY-MM-DD, optional
// scalars as null, collections always present.
type itemResp struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description *string            `json:"description"`
	Price       float64            `json:"price"`
	Tax         *float64           `json:"tax"`
	Tags        []string           `json:"tags"`
	Properties  map[string]string  `json:"properties"`
	CreatedAt   *response.DateTime `json:"createdAt"`
	ValidUntil  *response.Date     `json:"validUntil"`
	RevisedAt   []response.Date    `json:"revisedAt"`
}

func newItemResp(item catalog.Item) itemResp {
	resp := itemResp{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Tax:         item.Tax,
		Tags:        item.Tags,
		Properties:  item.Properties,
		RevisedAt:   make([]response.Date, 0, len(item.RevisedAt)),
	}

	// Collections marshal as [] and {}, never null.
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if resp.Properties == nil {
		resp.Properties = map[string]string{}
	}
	for _, d := range item.RevisedAt {
		resp.RevisedAt = append(resp.RevisedAt, response.Date(d))
	}

	if item.CreatedAt != nil {
		created := response.DateTime(*item.CreatedAt)
		resp.CreatedAt = &created
	}
	if item.ValidUntil != nil {
		valid := response.Date(*item.ValidUntil)
		resp.ValidUntil = &valid
	}
	return resp
}

// newListResp renders a bare array, the documented response shape of both
// POST /items and POST /search.
func (h *handler) newListResp(out catalog.ListItemsOutput) []itemResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return items
}

func (h *handler) newDetailResp(out catalog.DetailItemOutput) itemResp {
	return newItemResp(out.Item)
}
