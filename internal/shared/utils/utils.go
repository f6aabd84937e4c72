// Утилитарные функции общего назначения
package utils

import "strings"

// ContainsFold сообщает, содержит ли s подстроку substr без учёта регистра.
// Пустая подстрока считается совпадением.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
