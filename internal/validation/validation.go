// Package validation provides request-shape validation for API operations.
// Each operation validator returns the complete, ordered list of field
// violations so a single failure response carries every applicable message.
package validation

import (
	"encoding/json"
	"fmt"
)

// Body is a decoded JSON request object. Absent or malformed request bodies
// are represented as an empty Body, so every required field reports its own
// violation instead of the request failing on the parse step.
type Body map[string]interface{}

// ParseBody decodes raw JSON into a Body. Anything that is not a JSON object
// yields an empty Body.
func ParseBody(raw []byte) Body {
	var b Body
	if err := json.Unmarshal(raw, &b); err != nil || b == nil {
		return Body{}
	}
	return b
}

// stringField reports the field value and whether it is present and a string.
func (b Body) stringField(field string) (value string, present, isString bool) {
	v, ok := b[field]
	if !ok || v == nil {
		return "", false, false
	}
	s, ok := v.(string)
	return s, true, ok
}

// numberField reports whether the field is present as a JSON number.
func (b Body) numberField(field string) (value float64, ok bool) {
	v, present := b[field]
	if !present {
		return 0, false
	}
	f, isNumber := v.(float64)
	return f, isNumber
}

func emptyMsg(field string) string {
	return fmt.Sprintf("%s should not be empty", field)
}

func stringMsg(field string) string {
	return fmt.Sprintf("%s must be a string", field)
}

const numberMsg = "post_id must be a number conforming to the specified constraints"

// RegisterInput holds validated registration fields.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register validates a registration body. Violations are ordered
// name, email, password; absent or empty fields report only the emptiness
// message, format and strength rules apply to non-empty strings.
func Register(b Body) (RegisterInput, []string) {
	var in RegisterInput
	var msgs []string

	name, present, isString := b.stringField("name")
	switch {
	case !present, isString && name == "":
		msgs = append(msgs, emptyMsg("name"))
	case !isString:
		msgs = append(msgs, stringMsg("name"))
	default:
		in.Name = name
	}

	email, present, isString := b.stringField("email")
	switch {
	case !present, isString && email == "":
		msgs = append(msgs, emptyMsg("email"))
	case !isString:
		msgs = append(msgs, stringMsg("email"))
	case !IsEmail(email):
		msgs = append(msgs, "email must be an email")
	default:
		in.Email = email
	}

	password, present, isString := b.stringField("password")
	switch {
	case !present, isString && password == "":
		msgs = append(msgs, emptyMsg("password"))
	case !isString:
		msgs = append(msgs, stringMsg("password"))
	case !IsStrongPassword(password):
		msgs = append(msgs, "password is not strong enough")
	default:
		in.Password = password
	}

	return in, msgs
}

// PostInput holds validated post fields.
type PostInput struct {
	Title   string
	Content string
}

// PostCreate validates a post creation body. Both fields must be JSON
// strings; absent fields violate the type rule, matching the declared schema.
func PostCreate(b Body) (PostInput, []string) {
	var in PostInput
	var msgs []string

	title, _, isString := b.stringField("title")
	if !isString {
		msgs = append(msgs, stringMsg("title"))
	} else {
		in.Title = title
	}

	content, _, isString := b.stringField("content")
	if !isString {
		msgs = append(msgs, stringMsg("content"))
	} else {
		in.Content = content
	}

	return in, msgs
}

// PostPatchInput holds validated partial-update fields; nil means the field
// was not supplied and must retain its previous value.
type PostPatchInput struct {
	Title   *string
	Content *string
}

// PostPatch validates a partial post update. Only supplied fields are
// checked; a supplied field with a non-string value violates the type rule.
func PostPatch(b Body) (PostPatchInput, []string) {
	var in PostPatchInput
	var msgs []string

	if title, present, isString := b.stringField("title"); present {
		if !isString {
			msgs = append(msgs, stringMsg("title"))
		} else {
			in.Title = &title
		}
	}

	if content, present, isString := b.stringField("content"); present {
		if !isString {
			msgs = append(msgs, stringMsg("content"))
		} else {
			in.Content = &content
		}
	}

	return in, msgs
}

// CommentInput holds validated comment fields.
type CommentInput struct {
	PostID  uint
	Content string
}

// CommentCreate validates a comment creation body. post_id must be a JSON
// number and content a JSON string; whether post_id references a live post is
// deliberately not checked here.
func CommentCreate(b Body) (CommentInput, []string) {
	var in CommentInput
	var msgs []string

	postID, ok := b.numberField("post_id")
	if !ok {
		msgs = append(msgs, numberMsg)
	} else {
		in.PostID = uint(postID)
	}

	content, _, isString := b.stringField("content")
	if !isString {
		msgs = append(msgs, stringMsg("content"))
	} else {
		in.Content = content
	}

	return in, msgs
}
