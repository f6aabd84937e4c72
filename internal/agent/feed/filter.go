// Клиентский фильтр представления поверх накопленной ленты.
//
// Фильтр работает только с уже подгруженными записями и не трогает
// серверную пагинацию: без сброса ленты меняется лишь то, что видно.
package feed

import (
	smodels "github.com/IvanChernomyrdin/go-contact-manager/internal/shared/models"
	"github.com/IvanChernomyrdin/go-contact-manager/internal/shared/utils"
)

const (
	// collapsedVisible — сколько записей видно в свёрнутом состоянии.
	collapsedVisible = 6
	// showMoreThreshold — с какого числа совпадений появляется "показать ещё".
	// Именно >= 7, а не "> видимых": при ровно шести совпадениях
	// показывать больше нечего, все шесть и так на экране.
	showMoreThreshold = 7
)

// matches сообщает, проходит ли контакт текущий фильтр:
// регистронезависимое вхождение в имя, телефон или email.
func (f *Feed) matches(c smodels.Contact) bool {
	if f.filter == "" {
		return true
	}
	name := c.FirstName + " " + c.LastName
	return utils.ContainsFold(name, f.filter) ||
		utils.ContainsFold(c.Phone, f.filter) ||
		utils.ContainsFold(c.Email, f.filter)
}

// SetFilter задаёт текст клиентского фильтра и сворачивает выдачу.
func (f *Feed) SetFilter(q string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.filter = q
	f.expanded = false
}

// Filter возвращает текущий текст клиентского фильтра.
func (f *Feed) Filter() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filter
}

// Matching возвращает все записи ленты, проходящие фильтр.
func (f *Feed) Matching() []smodels.Contact {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.matchingLocked()
}

func (f *Feed) matchingLocked() []smodels.Contact {
	out := []smodels.Contact{}
	for _, c := range f.items {
		if f.matches(c) {
			out = append(out, c)
		}
	}
	return out
}

// Visible возвращает записи, которые сейчас должны быть на экране:
// совпадения фильтра, обрезанные по видимому лимиту.
func (f *Feed) Visible() []smodels.Contact {
	f.mu.Lock()
	defer f.mu.Unlock()

	m := f.matchingLocked()
	if f.expanded || len(m) <= collapsedVisible {
		return m
	}
	return m[:collapsedVisible]
}

// ToggleExpand переключает свёрнутое/развёрнутое состояние выдачи.
func (f *Feed) ToggleExpand() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expanded = !f.expanded
}

// Expanded сообщает, развёрнута ли выдача.
func (f *Feed) Expanded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.expanded
}

// ShowMoreAvailable сообщает, показывать ли контрол "показать ещё/меньше".
func (f *Feed) ShowMoreAvailable() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.matchingLocked()) >= showMoreThreshold
}
