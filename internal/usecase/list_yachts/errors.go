package list_yachts

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах пагинации
	ErrInvalidInput = errors.New("list_yachts: invalid input data")

	// ErrInternal возвращается, когда не удалось загрузить каталог
	ErrInternal = errors.New("list_yachts: internal error")
)
