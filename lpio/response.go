// SPDX-License-Identifier: MIT

package lpio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lexsimplex/row"
	"github.com/katalvlaran/lexsimplex/simplex"
)

// MessageUnbound is the body of every Unbound response.
const MessageUnbound = "Problem is unbound and the optimal solution is infinity"

// Outcome names the populated key of a Response.
const (
	OutcomeLinearProgram = "LinearProgram"
	OutcomeUnbound       = "Unbound"
	OutcomeError         = "Error"
)

// Response is the tagged outcome record. Exactly one field is set.
type Response struct {
	LinearProgram *row.Row `json:"LinearProgram,omitempty" yaml:"LinearProgram,omitempty"`
	Unbound       *string  `json:"Unbound,omitempty" yaml:"Unbound,omitempty"`
	Error         *string  `json:"Error,omitempty" yaml:"Error,omitempty"`
}

// Success wraps the optimal row {coefficients: solution, constant: objective}.
func Success(r row.Row) Response {
	r = r.Clone()
	return Response{LinearProgram: &r}
}

// UnboundResponse returns the fixed Unbound record.
func UnboundResponse() Response {
	msg := MessageUnbound
	return Response{Unbound: &msg}
}

// ErrorResponse carries err's message.
func ErrorResponse(err error) Response {
	msg := err.Error()
	return Response{Error: &msg}
}

// FromResult maps the outcome of simplex.Solve to a Response.
func FromResult(res *simplex.Result, err error) Response {
	switch {
	case err != nil:
		return ErrorResponse(err)
	case res == nil:
		return ErrorResponse(errors.New("lpio: no result"))
	case res.State == simplex.Unbound:
		return UnboundResponse()
	case res.State == simplex.Finished:
		return Success(res.Row())
	default:
		return ErrorResponse(fmt.Errorf("lpio: unexpected state %s", res.State))
	}
}

// Outcome returns which key is set, or "" for the zero Response.
func (r Response) Outcome() string {
	switch {
	case r.LinearProgram != nil:
		return OutcomeLinearProgram
	case r.Unbound != nil:
		return OutcomeUnbound
	case r.Error != nil:
		return OutcomeError
	default:
		return ""
	}
}

// Encode writes r to w. JSON output ends with a newline.
func Encode(w io.Writer, r Response, f Format) error {
	switch f {
	case JSON:
		return json.NewEncoder(w).Encode(r)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%s: %w", f, ErrUnsupportedFormat)
	}
}

// DecodeResponse reads a Response written by Encode.
func DecodeResponse(rd io.Reader, f Format) (Response, error) {
	var r Response
	var err error
	switch f {
	case JSON:
		err = json.NewDecoder(rd).Decode(&r)
	case YAML:
		err = yaml.NewDecoder(rd).Decode(&r)
	default:
		return Response{}, fmt.Errorf("%s: %w", f, ErrUnsupportedFormat)
	}
	if err != nil {
		return Response{}, fmt.Errorf("%w: %s: %v", ErrMalformedInput, f, err)
	}

	return r, nil
}
