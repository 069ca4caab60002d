package config

import (
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/yurykabanov/fsgc/pkg/domain"
	"github.com/yurykabanov/fsgc/pkg/dur"
)

// RuleSpec is the configuration of a single rule. It is written either as a
// bare duration expression or as a table:
//
//	"/tmp/build-*" = "2d"
//	"/var/cache/**" = { age = "1w", created = true, accessed = false }
//
// The two forms do not share defaults. The short form checks created and
// modified time and ignores access time, while the table form checks modified
// and access time and ignores created time unless told otherwise.
type RuleSpec struct {
	Age      time.Duration
	Created  bool
	Modified bool
	Accessed bool
}

var ruleFields = map[string]bool{
	"age":      true,
	"created":  true,
	"modified": true,
	"accessed": true,
}

// UnmarshalTOML implements toml.Unmarshaler.
func (r *RuleSpec) UnmarshalTOML(v interface{}) error {
	switch value := v.(type) {
	case string:
		age, err := dur.Parse(value)
		if err != nil {
			return errors.Wrapf(err, "invalid age %q", value)
		}

		*r = RuleSpec{Age: age, Created: true, Modified: true, Accessed: false}
		return nil

	case map[string]interface{}:
		return r.unmarshalTable(value)

	default:
		return errors.Errorf("rule must be a duration or a table, got %T", v)
	}
}

func (r *RuleSpec) unmarshalTable(table map[string]interface{}) error {
	var unknown []string
	for k := range table {
		if !ruleFields[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return errors.Errorf("unknown field %q", unknown[0])
	}

	rawAge, ok := table["age"]
	if !ok {
		return errors.New("missing field \"age\"")
	}

	s, ok := rawAge.(string)
	if !ok {
		return errors.Errorf("field \"age\" must be a string, got %T", rawAge)
	}

	age, err := dur.Parse(s)
	if err != nil {
		return errors.Wrapf(err, "invalid age %q", s)
	}

	parsed := RuleSpec{Age: age, Created: false, Modified: true, Accessed: true}

	for _, f := range []struct {
		name string
		dst  *bool
	}{
		{"created", &parsed.Created},
		{"modified", &parsed.Modified},
		{"accessed", &parsed.Accessed},
	} {
		raw, ok := table[f.name]
		if !ok {
			continue
		}

		b, ok := raw.(bool)
		if !ok {
			return errors.Errorf("field %q must be a boolean, got %T", f.name, raw)
		}
		*f.dst = b
	}

	*r = parsed
	return nil
}

func (r RuleSpec) Rule() domain.Rule {
	return domain.Rule{
		Age:      r.Age,
		Created:  r.Created,
		Modified: r.Modified,
		Accessed: r.Accessed,
	}
}
