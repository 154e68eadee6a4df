package log

type Action = string

const (
	AddAuthor         Action = "AddAuthor"
	DeleteAuthor             = "DeleteAuthor"
	EditAuthor               = "EditAuthor"
	ShowAuthors              = "ShowAuthors"
	AddBook                  = "AddBook"
	AddBookWithAuthor        = "AddBookWithAuthor"
	ShowBooks                = "ShowBooks"
	ShowBook                 = "ShowBook"
	GetAuthorBooks           = "GetAuthorBooks"
	DeleteBook               = "DeleteBook"
	EditBook                 = "EditBook"
)
