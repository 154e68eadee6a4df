package entity

type Author struct {
	id   AuthorID
	name string
}

func NewAuthor(id AuthorID, name string) Author {
	return Author{
		id:   id,
		name: name,
	}
}

func (a Author) ID() AuthorID {
	return a.id
}

func (a Author) Name() string {
	return a.name
}
