// Package feed реализует локальную ленту контактов CLI-клиента:
// постраничную подгрузку с сервера, дедупликацию и клиентский фильтр.
//
// Лента накапливает контакты постранично (offset/limit), отбрасывая
// дубликаты по стабильному ключу, и отдельно решает, какие из уже
// накопленных записей показывать (см. filter.go). Серверная пагинация
// и клиентская видимость независимы друг от друга.
package feed

import (
	"strconv"
	"sync"

	smodels "github.com/IvanChernomyrdin/go-contact-manager/internal/shared/models"
)

const (
	// DefaultPageSize — размер страницы серверной подгрузки.
	DefaultPageSize = 20
	// nearMargin — за сколько позиций до конца ленты тянуть следующую страницу.
	nearMargin = 5
)

// Fetcher — то, что лента ожидает от HTTP-клиента.
type Fetcher interface {
	SearchContacts(userID int64, search string, offset, limit int) ([]smodels.Contact, error)
}

// Feed — потокобезопасная лента контактов одного пользователя.
//
// Состояние подгрузки:
//   - offset: позиция следующего чтения на сервере;
//   - hasMore: сервер ещё может отдать новые записи;
//   - loading: guard одного запроса в полёте (второй вызов — no-op);
//   - lastQuery: поисковая строка, отправляемая серверу;
//   - seen: ключи уже принятых записей (дедупликация между страницами).
type Feed struct {
	mu      sync.Mutex
	fetcher Fetcher
	userID  int64

	pageSize  int
	offset    int
	hasMore   bool
	loading   bool
	lastQuery string
	seen      map[string]struct{}
	items     []smodels.Contact

	filter   string
	expanded bool
}

// New создаёт пустую ленту для пользователя userID.
func New(fetcher Fetcher, userID int64) *Feed {
	return &Feed{
		fetcher:  fetcher,
		userID:   userID,
		pageSize: DefaultPageSize,
		hasMore:  true,
		seen:     make(map[string]struct{}),
		items:    []smodels.Contact{},
	}
}

// Key возвращает ключ дедупликации записи: "id:<id>", если сервер прислал
// идентификатор, иначе стабильный хэш полей с префиксом "h:".
//
// Fallback нужен потому, что контракт сервера не гарантирует ID в каждой
// форме ответа — лента обязана это переживать.
func Key(c smodels.Contact) string {
	if c.ID != 0 {
		return "id:" + strconv.FormatInt(c.ID, 10)
	}
	s := c.FirstName + "|" + c.LastName + "|" + c.Phone + "|" + c.Email
	var h int32
	for _, r := range s {
		h = h*31 + r
	}
	return "h:" + strconv.FormatInt(int64(h), 10)
}

// Fetch подтягивает следующую страницу с сервера.
//
// Поведение:
//  1. запрос уже в полёте — вызов игнорируется;
//  2. reset=true — вся накопленная лента сбрасывается (offset=0, seen и
//     items очищаются, hasMore=true), query становится активным запросом;
//  3. hasMore=false — сетевого вызова нет, остаётся локальный фильтр;
//  4. иначе запрашивается страница (lastQuery, offset, pageSize);
//  5. из ответа отбрасываются записи с уже виденными ключами;
//  6. hasMore=false, если пришло меньше pageSize ИЛИ ни одной новой записи —
//     второе страхует от сервера, который игнорирует offset и шлёт
//     первую страницу по кругу;
//  7. offset сдвигается на число ПРИШЕДШИХ записей (не новых).
func (f *Feed) Fetch(query string, reset bool) error {
	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return nil
	}

	if reset {
		f.offset = 0
		f.hasMore = true
		f.lastQuery = query
		f.seen = make(map[string]struct{})
		f.items = f.items[:0]
	}

	if !f.hasMore {
		f.mu.Unlock()
		return nil
	}

	f.loading = true
	userID := f.userID
	q := f.lastQuery
	offset := f.offset
	limit := f.pageSize
	f.mu.Unlock()

	// сетевой вызов без удержания мьютекса
	page, err := f.fetcher.SearchContacts(userID, q, offset, limit)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false

	if err != nil {
		return err
	}

	added := 0
	for _, c := range page {
		k := Key(c)
		if _, ok := f.seen[k]; ok {
			continue
		}
		f.seen[k] = struct{}{}
		f.items = append(f.items, c)
		added++
	}

	if len(page) < f.pageSize || added == 0 {
		f.hasMore = false
	}
	f.offset += len(page)

	return nil
}

// Refresh перечитывает ленту с первой страницы по активному запросу.
// Вызывается после каждой успешной мутации (add/update/delete).
func (f *Feed) Refresh() error {
	f.mu.Lock()
	q := f.lastQuery
	f.mu.Unlock()
	return f.Fetch(q, true)
}

// EnsureAhead — аналог scroll-sentinel: когда позиция index подбирается
// к концу накопленной ленты, тянет следующую страницу. Единственный
// автоматический триггер подгрузки, никакого поллинга.
func (f *Feed) EnsureAhead(index int) error {
	f.mu.Lock()
	near := index >= len(f.items)-nearMargin
	busy := f.loading
	more := f.hasMore
	q := f.lastQuery
	f.mu.Unlock()

	if !near || busy || !more {
		return nil
	}
	return f.Fetch(q, false)
}

// Items возвращает копию всей накопленной (дедуплицированной) ленты.
func (f *Feed) Items() []smodels.Contact {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]smodels.Contact, len(f.items))
	copy(out, f.items)
	return out
}

// Len возвращает размер накопленной ленты.
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

// HasMore сообщает, ждёт ли лента ещё страниц от сервера.
func (f *Feed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasMore
}

// LastQuery возвращает активную поисковую строку серверной подгрузки.
func (f *Feed) LastQuery() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastQuery
}
