// В этом файле описаны методы клиента для работы
// с эндпоинтами аутентификации: регистрация и вход.
package api

import (
	smodels "github.com/IvanChernomyrdin/go-contact-manager/internal/shared/models"
)

// Register выполняет регистрацию пользователя на сервере.
//
// Метод отправляет POST запрос на /api/Register и возвращает AuthResult
// (userId, имя, фамилия). В случае ошибки возвращает непустую ошибку
// и пустой ответ.
func (c *Client) Register(firstName, lastName, login, password string) (smodels.AuthResult, error) {
	var res smodels.AuthResult
	err := c.PostJSON("/api/Register", smodels.RegisterRequest{
		FirstName: firstName,
		LastName:  lastName,
		Login:     login,
		Password:  password,
	}, &res)
	return res, err
}

// Login выполняет вход пользователя.
//
// Метод отправляет POST запрос на /api/Login и возвращает AuthResult.
// Неверный логин и неверный пароль дают одну и ту же ошибку сервера.
func (c *Client) Login(login, password string) (smodels.AuthResult, error) {
	var res smodels.AuthResult
	err := c.PostJSON("/api/Login", smodels.LoginRequest{
		Login:    login,
		Password: password,
	}, &res)
	return res, err
}
