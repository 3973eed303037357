package catalogue

import "github.com/wichananm65/product-catalogue/internal/product"

// View is everything the catalogue page shows for one (source list,
// criteria, page) triple.
type View struct {
	Loading      bool              `json:"loading"`
	Error        string            `json:"error,omitempty"`
	Notification *Notification     `json:"notification,omitempty"`
	Criteria     Criteria          `json:"criteria"`
	Total        int               `json:"total"`
	Products     []product.Product `json:"products"`
	// Pagination is omitted while the catalogue load has failed.
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Notification is a blocking alert the client must show once.
type Notification struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

func ErrorNotification(msg string) *Notification {
	return &Notification{Icon: "error", Title: "Error", Text: msg}
}

// BuildView derives the visible page. The page is clamped into range first;
// the clamped value is returned so callers can store it back.
func BuildView(snap product.Snapshot, c Criteria, page int) (View, int) {
	v := View{
		Criteria: c,
		Products: []product.Product{},
	}

	switch snap.State {
	case product.StateFailed:
		v.Error = snap.Err
		return v, ClampPage(page, 0)
	case product.StateLoading:
		v.Loading = true
		page = ClampPage(page, 0)
		_, pg := Paginate(nil, page)
		v.Pagination = &pg
		return v, page
	}

	filtered := Filter(snap.Products, c)
	page = ClampPage(page, TotalPages(len(filtered)))
	items, pg := Paginate(filtered, page)

	v.Total = len(filtered)
	v.Products = items
	v.Pagination = &pg
	return v, page
}

// CountPages returns the number of pages the criteria produce over the snapshot.
func CountPages(snap product.Snapshot, c Criteria) int {
	if snap.State != product.StateReady {
		return 0
	}
	return TotalPages(len(Filter(snap.Products, c)))
}
