package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/iudanet/homelabster/internal/models"
	"github.com/iudanet/homelabster/pkg/api"
)

// validate общий инстанс валидатора, потокобезопасен и кеширует метаданные структур
var validate = validator.New(validator.WithRequiredStructEnabled())

// Ограничения на поля, продублированы в сообщениях об ошибках
const (
	MaxNameLen        = 100
	MaxDescriptionLen = 500
	MaxSiteNameLen    = 100
)

// ValidateLogin проверяет запрос на вход.
// Проверяется только наличие полей, сами значения сверяет auth сервис.
func ValidateLogin(req *api.LoginRequest) error {
	return firstError(validate.Struct(req), loginMessages)
}

// ValidateTileCreate проверяет запрос на создание плитки
func ValidateTileCreate(req *api.TileCreateRequest) error {
	return firstError(validate.Struct(req), tileMessages)
}

// ValidateTileUpdate проверяет частичное обновление плитки.
// nil-поля не проверяются, они остаются без изменений.
// Поля patch проверяются явно: для указателей валидатор пропускает
// пустые значения как нулевые, а пустое имя надо отклонить.
func ValidateTileUpdate(req *api.TileUpdateRequest) error {
	if req.Name != nil {
		if *req.Name == "" {
			return errors.New("Name is required")
		}
		if len(*req.Name) > MaxNameLen {
			return fmt.Errorf("Name must be less than %d characters", MaxNameLen)
		}
	}
	if req.URL != nil {
		if err := validate.Var(*req.URL, "required,url"); err != nil {
			return errors.New("Must be a valid URL")
		}
	}
	if req.Description != nil && len(*req.Description) > MaxDescriptionLen {
		return fmt.Errorf("Description must be less than %d characters", MaxDescriptionLen)
	}
	if req.Order != nil && *req.Order < 0 {
		return errors.New("Order must be a non-negative integer")
	}
	return nil
}

// ValidateSettingsUpdate проверяет частичное обновление настроек
func ValidateSettingsUpdate(req *api.SettingsUpdateRequest) error {
	if req.Theme != nil && !models.Theme(*req.Theme).Valid() {
		return errors.New("Theme must be one of light, dark or system")
	}
	if req.SiteName != nil {
		if *req.SiteName == "" {
			return errors.New("Site name is required")
		}
		if len(*req.SiteName) > MaxSiteNameLen {
			return fmt.Errorf("Site name must be less than %d characters", MaxSiteNameLen)
		}
	}
	return nil
}

// Сообщения по полям, формат совместим с прежними ответами API
var (
	loginMessages = map[string]string{
		"Username": "Username is required",
		"Password": "Password is required",
	}
	tileMessages = map[string]string{
		"Name.required": "Name is required",
		"Name":          fmt.Sprintf("Name must be less than %d characters", MaxNameLen),
		"URL":           "Must be a valid URL",
		"Description":   fmt.Sprintf("Description must be less than %d characters", MaxDescriptionLen),
		"Order":         "Order must be a non-negative integer",
	}
)

// firstError переводит ошибку валидатора в сообщение о первом
// нарушенном ограничении. Сначала ищется сообщение для пары
// поле.тег, потом для самого поля.
func firstError(err error, messages map[string]string) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return errors.New(msg)
	}
	if msg, ok := messages[fe.Field()]; ok {
		return errors.New(msg)
	}
	return fmt.Errorf("invalid value for field %s", fe.Field())
}
