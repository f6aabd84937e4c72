// Package api содержит HTTP-клиент для взаимодействия с сервером контактов.
//
// Клиент инкапсулирует базовый URL сервера и настроенный http.Client
// и предоставляет типизированные методы поверх PostJSON.
//
// Особенности:
//   - baseURL нормализуется (обрезаются завершающие "/").
//   - Все эндпоинты сервера — POST с JSON-телом и конвертом {results, error}
//     в ответе; непустой error конверта превращается в обычную go-ошибку.
//   - HTTP-статус не 2xx означает поломку транспорта, а не доменную ошибку:
//     в этом случае возвращается ошибка с текстом тела ответа.
//
// ВНИМАНИЕ: для https-адресов NewClient включает InsecureSkipVerify=true
// (TLS сертификат не проверяется). Это допустимо только для разработки и
// локального окружения с самоподписанным сертификатом.
package api

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	smodels "github.com/IvanChernomyrdin/go-contact-manager/internal/shared/models"
)

// Client реализует HTTP-клиент для общения с сервером контактов.
//
// Поля:
//   - baseURL: базовый адрес сервера без завершающего слэша.
//   - http: настроенный http.Client (таймаут, транспорт, TLS).
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient создаёт новый HTTP-клиент для общения с сервером.
//
// Поведение:
//   - обрезает завершающий "/" у baseURL;
//   - создаёт http.Client с таймаутом 10 секунд;
//   - для https выключает проверку сертификата (самоподписанные dev-серты).
func NewClient(baseURL string) *Client {
	base := strings.TrimRight(baseURL, "/")

	c := &http.Client{Timeout: 10 * time.Second}
	if strings.HasPrefix(base, "https://") {
		c.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // только для dev
		}
	}

	return &Client{
		baseURL: base,
		http:    c,
	}
}

// readAPIErrorBody читает тело ответа сервера и возвращает ошибку с текстом тела.
//
// Используется в случае HTTP-ошибок (не 2xx).
//
// Поведение:
//   - читает res.Body полностью;
//   - если тело непустое — возвращает error с этим текстом (trim пробелов);
//   - если тело пустое — возвращает error со строкой res.Status.
func readAPIErrorBody(res *http.Response) error {
	raw, _ := io.ReadAll(res.Body)
	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = res.Status
	}
	return errors.New(msg)
}

// PostJSON выполняет POST-запрос к серверу, сериализуя req в JSON,
// и разбирает конверт {results, error} из ответа.
//
// Параметры:
//   - path: путь относительно baseURL (например: "/api/SearchContacts").
//   - req: объект для сериализации в JSON. Если req == nil, тело не отправляется
//     и Content-Type не устанавливается.
//   - results: указатель, в который декодируется results конверта.
//     Если results == nil или results конверта равен null, декодирование
//     пропускается.
//
// Обработка ответа:
//   - не 2xx: ошибка транспорта с текстом тела ответа (или res.Status);
//   - 2xx, непустой error конверта: go-ошибка с этим текстом;
//   - 2xx, error == "": декодирует results конверта в results.
func (c *Client) PostJSON(path string, req any, results any) error {
	var buf bytes.Buffer
	if req != nil {
		if err := json.NewEncoder(&buf).Encode(req); err != nil {
			return err
		}
	}

	r, err := http.NewRequest(http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	r.Header.Set("Accept", "application/json")
	if req != nil {
		r.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(r)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return readAPIErrorBody(res)
	}

	var env smodels.Envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return err
	}
	if env.Error != "" {
		return errors.New(env.Error)
	}
	if results == nil || len(env.Results) == 0 || string(env.Results) == "null" {
		return nil
	}
	return json.Unmarshal(env.Results, results)
}
