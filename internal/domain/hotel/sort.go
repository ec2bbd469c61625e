package hotel

import "github.com/Seraphinsupinfo/4CITE/internal/httperr"

const (
	DefaultSortField = "creationDate"
	DefaultListLimit = 10
)

// sortColumns maps the API-level sort fields onto the columns they are
// allowed to reach. Anything outside this list is rejected.
var sortColumns = map[string]string{
	"creationDate": "creation_date",
	"name":         "name",
	"location":     "location",
}

func SortColumn(sortBy string) (string, error) {
	column, ok := sortColumns[sortBy]
	if !ok {
		return "", httperr.NewBadRequest("invalid_sort_field", "Invalid sort field")
	}
	return column, nil
}
