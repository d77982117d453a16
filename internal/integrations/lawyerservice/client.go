package lawyerservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с LawyerService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента LawyerService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetLawyer получает профиль юриста
func (c *Client) GetLawyer(ctx context.Context, lawyerID int64) (*Lawyer, error) {
	url := fmt.Sprintf("%s/internal/lawyers/%d", c.baseURL, lawyerID)

	var lawyer Lawyer
	if err := c.getJSON(ctx, url, &lawyer, ErrLawyerNotFound); err != nil {
		return nil, err
	}

	return &lawyer, nil
}

// GetService получает услугу юриста
func (c *Client) GetService(ctx context.Context, lawyerID, serviceID int64) (*Service, error) {
	url := fmt.Sprintf("%s/internal/lawyers/%d/services/%d", c.baseURL, lawyerID, serviceID)

	var service Service
	if err := c.getJSON(ctx, url, &service, ErrServiceNotFound); err != nil {
		return nil, err
	}

	return &service, nil
}

// GetFreeSlots получает каталог свободных слотов юриста на дату (YYYY-MM-DD)
func (c *Client) GetFreeSlots(ctx context.Context, lawyerID int64, date string) ([]FreeSlot, error) {
	url := fmt.Sprintf("%s/internal/lawyers/%d/slots?date=%s", c.baseURL, lawyerID, date)

	var slots []FreeSlot
	if err := c.getJSON(ctx, url, &slots, ErrLawyerNotFound); err != nil {
		return nil, err
	}

	return slots, nil
}

// GetShifts получает смены и выходные юриста за период (даты YYYY-MM-DD)
func (c *Client) GetShifts(ctx context.Context, lawyerID int64, from, to string) ([]Shift, error) {
	url := fmt.Sprintf("%s/internal/lawyers/%d/shifts?from=%s&to=%s", c.baseURL, lawyerID, from, to)

	var shifts []Shift
	if err := c.getJSON(ctx, url, &shifts, ErrLawyerNotFound); err != nil {
		return nil, err
	}

	return shifts, nil
}

// GetShiftsWithGracefulDegradation получает смены с graceful degradation
// При недоступности LawyerService возвращает ErrServiceDegraded: каталог смен
// считается неизвестным, а не пустым
func (c *Client) GetShiftsWithGracefulDegradation(ctx context.Context, lawyerID int64, from, to string) ([]Shift, error) {
	shifts, err := c.GetShifts(ctx, lawyerID, from, to)
	if err != nil {
		// Бизнес-ошибку пробрасываем как есть
		if err == ErrLawyerNotFound {
			return nil, err
		}

		// Для остальных ошибок (недоступность, timeout, парсинг) применяем degradation
		c.log.Error("LawyerService unavailable, applying graceful degradation for lawyer_id=%d: %v", lawyerID, err)
		return nil, fmt.Errorf("%w: lawyer_id=%d, error=%v", ErrServiceDegraded, lawyerID, err)
	}

	return shifts, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ
// notFoundErr возвращается на 404
func (c *Client) getJSON(ctx context.Context, url string, dst interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return fmt.Errorf("%w: invalid request parameters", ErrInvalidResponse)
	case http.StatusNotFound:
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
