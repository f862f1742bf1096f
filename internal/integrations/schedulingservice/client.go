package schedulingservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client клиент для работы с сервисом расписаний
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса расписаний
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetOpenSlots получает свободные слоты компании на дату (YYYY-MM-DD)
// Слоты упорядочены по времени начала, между ними возможны разрывы
func (c *Client) GetOpenSlots(ctx context.Context, companyID int64, date string) (*OpenSlotsResponse, error) {
	endpoint := fmt.Sprintf("%s/internal/companies/%d/open-slots?date=%s", c.baseURL, companyID, url.QueryEscape(date))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid company ID or date", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrCompanyNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var slots OpenSlotsResponse
	if err := json.NewDecoder(resp.Body).Decode(&slots); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("GetOpenSlots: company_id=%d, date=%s, slots=%d", companyID, date, len(slots.Slots))
	return &slots, nil
}
