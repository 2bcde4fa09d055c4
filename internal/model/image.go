package model

// StockImage is a photo suggestion from the stock photo provider.
type StockImage struct {
	ID             string  `json:"id"`
	AltDescription *string `json:"alt_description"`
	ThumbnailURL   string  `json:"thumbnail_url"`
	PageURL        string  `json:"page_url"`
	AuthorName     string  `json:"author_name"`
}

// ImageSearchResult is a filtered page of stock images.
// Total and TotalPages are reported by the provider before filtering.
type ImageSearchResult struct {
	Results    []StockImage `json:"results"`
	Total      int          `json:"total"`
	TotalPages int          `json:"total_pages"`
}
