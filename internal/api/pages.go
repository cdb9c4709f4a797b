package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// PagesAPI groups the page resource calls.
type PagesAPI struct {
	c *Client
}

// GetAll retrieves a page of pages, filtered and paginated per params.
func (p PagesAPI) GetAll(ctx context.Context, params ListParams) (PageList, error) {
	var payload envelope[PageList]
	if err := p.c.get(ctx, "/api/pages", listQuery(params), &payload); err != nil {
		return PageList{}, err
	}
	return payload.Data, nil
}

// GetByID retrieves a single page by its identifier, for editing.
func (p PagesAPI) GetByID(ctx context.Context, id string) (Page, error) {
	if strings.TrimSpace(id) == "" {
		return Page{}, fmt.Errorf("page id required")
	}
	var payload envelope[Page]
	if err := p.c.get(ctx, "/api/pages/by-id/"+url.PathEscape(id), nil, &payload); err != nil {
		return Page{}, err
	}
	return payload.Data, nil
}

// GetBySlug resolves a page by slug. A missing slug surfaces as a 404 that
// the gateway leaves unnotified; check with IsNotFound.
func (p PagesAPI) GetBySlug(ctx context.Context, slug string) (Page, error) {
	if strings.TrimSpace(slug) == "" {
		return Page{}, fmt.Errorf("page slug required")
	}
	var payload envelope[Page]
	if err := p.c.get(ctx, "/api/pages/"+url.PathEscape(slug), nil, &payload); err != nil {
		return Page{}, err
	}
	return payload.Data, nil
}

// Create creates a new page and raises the success notification itself.
func (p PagesAPI) Create(ctx context.Context, data PageData) (Page, error) {
	var payload envelope[Page]
	rel := &url.URL{Path: "/api/pages"}
	if err := p.c.do(ctx, "POST", rel, data, &payload); err != nil {
		return Page{}, err
	}
	p.c.notifySuccess("Page created")
	return payload.Data, nil
}

// Update updates an existing page and raises the success notification itself.
func (p PagesAPI) Update(ctx context.Context, id string, data PageData) (Page, error) {
	if strings.TrimSpace(id) == "" {
		return Page{}, fmt.Errorf("page id required")
	}
	var payload envelope[Page]
	rel := &url.URL{Path: "/api/pages/" + url.PathEscape(id)}
	if err := p.c.do(ctx, "PUT", rel, data, &payload); err != nil {
		return Page{}, err
	}
	p.c.notifySuccess("Page updated")
	return payload.Data, nil
}

// Delete deletes a page by identifier and raises the success notification.
func (p PagesAPI) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("page id required")
	}
	rel := &url.URL{Path: "/api/pages/" + url.PathEscape(id)}
	if err := p.c.do(ctx, "DELETE", rel, nil, nil); err != nil {
		return err
	}
	p.c.notifySuccess("Page deleted")
	return nil
}

func listQuery(params ListParams) url.Values {
	values := url.Values{}
	if params.Page > 0 {
		values.Set("page", strconv.Itoa(params.Page))
	}
	if params.PageSize > 0 {
		values.Set("limit", strconv.Itoa(params.PageSize))
	}
	if search := strings.TrimSpace(params.Search); search != "" {
		values.Set("search", search)
	}
	return values
}
