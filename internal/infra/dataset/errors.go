package dataset

import "errors"

var (
	// ErrUnsupportedFormat возвращается для файлов не .yaml/.yml/.json
	ErrUnsupportedFormat = errors.New("dataset: unsupported file format")

	// ErrInvalidDataset возвращается, когда файл не проходит проверку схемой
	ErrInvalidDataset = errors.New("dataset: invalid dataset")

	// ErrDuplicateSlug возвращается, когда slug встречается дважды
	ErrDuplicateSlug = errors.New("dataset: duplicate slug")

	// ErrYachtNotFound возвращается, когда яхты нет в датасете
	ErrYachtNotFound = errors.New("dataset: yacht not found")
)
