package project

import (
	"fmt"

	"github.com/inovacc/projtrack/internal/encoding"
	"github.com/inovacc/projtrack/internal/model"
)

// DecodeCollection parses a JSON array of project records. Field values are
// not validated, but every element must decode as a project object: a field
// of the wrong JSON type, like a quoted payment, rejects the document.
func DecodeCollection(data []byte) ([]model.Project, error) {
	elems, err := encoding.SplitArray(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	projects := make([]model.Project, 0, len(elems))

	for i, raw := range elems {
		p, err := encoding.ParseJSON[model.Project](raw)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrInvalidFormat, i, err)
		}

		projects = append(projects, *p)
	}

	return projects, nil
}

// EncodeCollection renders the collection as stored in the slot.
func EncodeCollection(projects []model.Project) ([]byte, error) {
	if projects == nil {
		projects = []model.Project{}
	}

	return encoding.ToJSON(projects)
}

// EncodeDocument renders the collection as a pretty-printed export document.
func EncodeDocument(projects []model.Project) ([]byte, error) {
	if projects == nil {
		projects = []model.Project{}
	}

	return encoding.ToJSONIndent(projects)
}
