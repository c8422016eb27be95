package web

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// GetQueryFunc reads an optional query parameter and converts it to the given
// kind. A missing parameter yields a typed nil pointer; a malformed one is
// recorded and reported by ValidQuery.
func (c *Context) GetQueryFunc(kind reflect.Kind, name string) interface{} {
	value, ok := c.GetQuery(name)

	switch kind {
	case reflect.Int:
		var v *int
		if ok {
			parsed, err := strconv.Atoi(value)
			if err != nil {
				c.queryErrors = append(c.queryErrors, fmt.Sprintf("%s must be an integer", name))
				return v
			}
			v = &parsed
		}
		return v
	case reflect.Bool:
		var v *bool
		if ok {
			parsed, err := strconv.ParseBool(value)
			if err != nil {
				c.queryErrors = append(c.queryErrors, fmt.Sprintf("%s must be a boolean", name))
				return v
			}
			v = &parsed
		}
		return v
	case reflect.String:
		var v *string
		if ok {
			v = &value
		}
		return v
	}

	c.queryErrors = append(c.queryErrors, fmt.Sprintf("unsupported kind for %s", name))
	return nil
}

// GetParam reads a required path parameter.
func (c *Context) GetParam(kind reflect.Kind, name string) interface{} {
	value := c.Param(name)

	switch kind {
	case reflect.Int:
		parsed, err := strconv.Atoi(value)
		if err != nil {
			c.paramErrors = append(c.paramErrors, fmt.Sprintf("%s must be an integer", name))
			return 0
		}
		return parsed
	case reflect.String:
		return value
	}

	c.paramErrors = append(c.paramErrors, fmt.Sprintf("unsupported kind for %s", name))
	return nil
}

func (c *Context) ValidQuery() error {
	if len(c.queryErrors) > 0 {
		return NewRequestError(errors.New(strings.Join(c.queryErrors, "; ")), http.StatusBadRequest)
	}
	return nil
}

func (c *Context) ValidParam() error {
	if len(c.paramErrors) > 0 {
		return NewRequestError(errors.New(strings.Join(c.paramErrors, "; ")), http.StatusBadRequest)
	}
	return nil
}

// BindFunc binds the request body and checks that the named struct fields were
// actually provided. Fields are checked by name against nil pointers.
func (c *Context) BindFunc(obj interface{}, requiredFields ...string) error {
	if err := c.ShouldBind(obj); err != nil {
		return NewRequestError(errors.Wrap(err, "binding request"), http.StatusBadRequest)
	}

	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	var missing []string
	for _, name := range requiredFields {
		field := v.FieldByName(name)
		if !field.IsValid() {
			continue
		}
		switch field.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
			if field.IsNil() {
				missing = append(missing, name)
			}
		case reflect.String:
			if field.Len() == 0 {
				missing = append(missing, name)
			}
		}
	}

	if len(missing) > 0 {
		return NewRequestError(
			errors.Errorf("required fields: %s", strings.Join(missing, ", ")),
			http.StatusBadRequest,
		)
	}

	return nil
}

func (c *Context) Respond(data interface{}, status int) error {
	c.JSON(status, data)
	return nil
}

func (c *Context) RespondError(err error) error {
	if err == nil {
		return nil
	}

	var webErr *Error
	if errors.As(err, &webErr) {
		response := map[string]interface{}{
			"error":  webErr.Err.Error(),
			"status": false,
		}
		if len(webErr.Fields) > 0 {
			response["fields"] = webErr.Fields
		}
		c.JSON(webErr.Status, response)
		return nil
	}

	c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"error":  err.Error(),
		"status": false,
	})
	return nil
}
