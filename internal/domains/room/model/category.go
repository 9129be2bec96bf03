package model

import (
	"fmt"
	"strings"
)

// Category classifies what a room is used for. The zero value is not a category.
type Category int

const (
	CategoryMeeting Category = iota + 1
	CategoryConference
	CategoryAuditorium
)

// Categories lists every valid category in declaration order.
func Categories() []Category {
	return []Category{CategoryMeeting, CategoryConference, CategoryAuditorium}
}

// CategoryToDisplayName returns the human readable name of c.
func CategoryToDisplayName(c Category) (string, error) {
	switch c {
	case CategoryMeeting:
		return "Meeting", nil
	case CategoryConference:
		return "Conference", nil
	case CategoryAuditorium:
		return "Auditorium", nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
}

// ParseCategory matches a display name, ignoring case and surrounding spaces.
func ParseCategory(value string) (Category, error) {
	trimmed := strings.TrimSpace(value)

	for _, c := range Categories() {
		name, _ := CategoryToDisplayName(c)
		if strings.EqualFold(name, trimmed) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, value)
}

func (c Category) Validate() error {
	_, err := CategoryToDisplayName(c)

	return err
}

func (c Category) String() string {
	name, err := CategoryToDisplayName(c)
	if err != nil {
		return fmt.Sprintf("Category(%d)", int(c))
	}

	return name
}

func (c Category) MarshalText() ([]byte, error) {
	name, err := CategoryToDisplayName(c)
	if err != nil {
		return nil, err
	}

	return []byte(name), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}
