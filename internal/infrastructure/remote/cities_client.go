package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"frota_backoffice/internal/domain/entities"
	"frota_backoffice/internal/usecase/interfaces"
)

var _ interfaces.ICitiesRemote = (*CitiesClient)(nil)

// CitiesClient talks to the optional cities backend. Construction never
// fails; requests do, and the caller degrades to local storage.
type CitiesClient struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewCitiesClient(baseURL, token string) *CitiesClient {
	return &CitiesClient{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *CitiesClient) List(ctx context.Context) ([]entities.City, error) {
	var cities []entities.City
	if err := c.do(ctx, http.MethodGet, "/api/cities", nil, &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

func (c *CitiesClient) Create(ctx context.Context, city entities.City) (entities.City, error) {
	var created entities.City
	if err := c.do(ctx, http.MethodPost, "/api/cities", city, &created); err != nil {
		return entities.City{}, err
	}
	return created, nil
}

func (c *CitiesClient) Update(ctx context.Context, city entities.City) (entities.City, error) {
	var updated entities.City
	if err := c.do(ctx, http.MethodPut, "/api/cities/"+city.ID, city, &updated); err != nil {
		return entities.City{}, err
	}
	return updated, nil
}

func (c *CitiesClient) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/cities/"+id, nil, nil)
}

func (c *CitiesClient) do(ctx context.Context, method, path string, payload, dest any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("cities backend returned %d", resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
