// Package query turns inbound query-string parameters into a MongoDB
// filter. List endpoints across features share this translation instead of
// rebuilding it per collection.
package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	errs "github.com/xyz-asif/modacart/pkg/errors"
)

const (
	defaultLimit = 25
	maxLimit     = 100
)

// reserved keys never end up in the filter
var reserved = map[string]struct{}{
	"select": {},
	"sort":   {},
	"page":   {},
	"limit":  {},
}

// comparison keywords that get their operator-prefixed form
var operators = map[string]struct{}{
	"gt":  {},
	"gte": {},
	"lt":  {},
	"lte": {},
	"in":  {},
}

// Query is the translated form of a list request.
type Query struct {
	Filter bson.M
	Select []string
	Sort   string
	Page   int
	Limit  int
}

// Translate converts raw query values into a store filter plus projection
// and pagination data. Keys of the form field[op] with op in
// {gt, gte, lt, lte, in} become comparison operators; anything else is an
// equality match. Values stay strings, the way they arrived.
func Translate(values url.Values) (*Query, error) {
	q := &Query{
		Filter: bson.M{},
		Page:   1,
		Limit:  defaultLimit,
	}

	if sel := values.Get("select"); sel != "" {
		for _, field := range strings.Split(sel, ",") {
			field = strings.TrimSpace(field)
			if field != "" {
				q.Select = append(q.Select, field)
			}
		}
	}

	// Sort is accepted and carried but not applied to the store query.
	// TODO: wire Sort into FindOptions once clients agree on a sort grammar.
	q.Sort = values.Get("sort")

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 0 {
		q.Page = page
	}
	if limit, err := strconv.Atoi(values.Get("limit")); err == nil && limit > 0 && limit <= maxLimit {
		q.Limit = limit
	}

	for key, vals := range values {
		if _, ok := reserved[key]; ok {
			continue
		}
		if len(vals) == 0 {
			continue
		}

		field, op, err := splitKey(key)
		if err != nil {
			return nil, err
		}

		switch {
		case op == "":
			if len(vals) == 1 {
				mergeEquality(q.Filter, field, vals[0])
			} else {
				mergeEquality(q.Filter, field, vals)
			}
		case op == "in":
			// in always gets an array, even for a single value
			var members []string
			for _, v := range vals {
				for _, m := range strings.Split(v, ",") {
					members = append(members, m)
				}
			}
			mergeOperator(q.Filter, field, "$in", members)
		default:
			if _, known := operators[op]; known {
				mergeOperator(q.Filter, field, "$"+op, vals[0])
			} else {
				// unknown suffixes stay as plain nested keys, unprefixed
				mergeOperator(q.Filter, field, op, vals[0])
			}
		}
	}

	return q, nil
}

// FindOptions builds driver options carrying the projection and pagination.
func (q *Query) FindOptions() *options.FindOptions {
	opts := options.Find()

	if len(q.Select) > 0 {
		projection := bson.D{}
		for _, field := range q.Select {
			projection = append(projection, bson.E{Key: field, Value: 1})
		}
		opts.SetProjection(projection)
	}

	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
		opts.SetSkip(int64((q.Page - 1) * q.Limit))
	}

	return opts
}

// splitKey parses "field" or "field[op]" forms. Anything else, such as
// unbalanced brackets or nested operators, is a malformed filter.
func splitKey(key string) (field, op string, err error) {
	open := strings.IndexByte(key, '[')
	if open == -1 {
		if strings.ContainsAny(key, "]") || key == "" {
			return "", "", malformed(key)
		}
		return key, "", nil
	}

	if open == 0 || !strings.HasSuffix(key, "]") {
		return "", "", malformed(key)
	}

	field = key[:open]
	op = key[open+1 : len(key)-1]
	if op == "" || strings.ContainsAny(op, "[]") || strings.ContainsAny(field, "]") {
		return "", "", malformed(key)
	}

	return field, op, nil
}

// mergeOperator and mergeEquality keep the result independent of key
// iteration order: an equality and an operator on the same field always
// land in one operator map, the equality as $eq.
func mergeOperator(filter bson.M, field, op string, value interface{}) {
	if existing, ok := filter[field].(bson.M); ok {
		existing[op] = value
		return
	}
	if existing, ok := filter[field]; ok {
		filter[field] = bson.M{"$eq": existing, op: value}
		return
	}
	filter[field] = bson.M{op: value}
}

func mergeEquality(filter bson.M, field string, value interface{}) {
	if existing, ok := filter[field].(bson.M); ok {
		existing["$eq"] = value
		return
	}
	filter[field] = value
}

func malformed(key string) error {
	return fmt.Errorf("%w: bad query key %q", errs.ErrMalformedFilter, key)
}
