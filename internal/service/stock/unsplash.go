package stock

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"vetpost/backend/internal/config"
)

// ProviderUnsplash is the name reported by UnsplashClient.
const ProviderUnsplash = "unsplash"

// maxErrorBody bounds how much of an error response is kept.
const maxErrorBody = 2048

// UnsplashClient implements Searcher for the Unsplash API.
type UnsplashClient struct {
	httpClient *http.Client
	baseURL    string
	accessKey  string
}

// NewUnsplashClient creates a client for baseURL, e.g. https://api.unsplash.com.
func NewUnsplashClient(httpClient *http.Client, baseURL, accessKey string) *UnsplashClient {
	return &UnsplashClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		accessKey:  accessKey,
	}
}

// Name returns the provider name.
func (c *UnsplashClient) Name() string {
	return ProviderUnsplash
}

type unsplashSearchResponse struct {
	Total      int             `json:"total"`
	TotalPages int             `json:"total_pages"`
	Results    []unsplashPhoto `json:"results"`
}

type unsplashPhoto struct {
	ID             string  `json:"id"`
	Type           string  `json:"type"`
	AltDescription *string `json:"alt_description"`
	Description    *string `json:"description"`
	URLs           struct {
		Small string `json:"small"`
		Thumb string `json:"thumb"`
	} `json:"urls"`
	Links struct {
		HTML string `json:"html"`
	} `json:"links"`
	User struct {
		Name string `json:"name"`
	} `json:"user"`
	Tags []struct {
		Title string `json:"title"`
	} `json:"tags"`
}

// Search calls GET /search/photos.
func (c *UnsplashClient) Search(ctx context.Context, q Query) (Page, error) {
	params := url.Values{}
	params.Set("query", q.Term)
	if q.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.Orientation != "" {
		params.Set("orientation", q.Orientation)
	}
	if q.ContentFilter != "" {
		params.Set("content_filter", q.ContentFilter)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search/photos?"+params.Encode(), nil)
	if err != nil {
		return Page{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)
	req.Header.Set("Accept-Version", "v1")
	req.Header.Set("User-Agent", config.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("search photos: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return Page{}, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(body)}
	}

	var decoded unsplashSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Page{}, fmt.Errorf("decode response: %w", err)
	}

	page := Page{
		Total:      decoded.Total,
		TotalPages: decoded.TotalPages,
		Photos:     make([]Photo, 0, len(decoded.Results)),
	}
	for _, r := range decoded.Results {
		thumb := r.URLs.Small
		if thumb == "" {
			thumb = r.URLs.Thumb
		}
		tags := make([]string, 0, len(r.Tags))
		for _, tag := range r.Tags {
			tags = append(tags, tag.Title)
		}
		page.Photos = append(page.Photos, Photo{
			ID:             r.ID,
			Type:           r.Type,
			AltDescription: r.AltDescription,
			Description:    r.Description,
			Tags:           tags,
			ThumbnailURL:   thumb,
			PageURL:        r.Links.HTML,
			AuthorName:     r.User.Name,
		})
	}
	return page, nil
}
