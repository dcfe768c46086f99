package core

import (
	"errors"
	"fmt"
)

var (
	// Assembler errors
	ErrOpcodeInvalid       = errors.New("opcode invalid")
	ErrArity               = errors.New("wrong number of operands")
	ErrLabelDuplicate      = errors.New("label duplicated")
	ErrLabelInvalid        = errors.New("label invalid")
	ErrRegisterInvalid     = errors.New("register invalid")
	ErrRegisterUnsupported = errors.New("register unsupported")
	ErrTargetInvalid       = errors.New("target invalid")
)

// ErrLabelMissing is returned when a jump names a label that is never defined.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return fmt.Sprintf("label %v missing", string(el))
}

// ErrOperand names the operand that could not be used.
type ErrOperand struct {
	Operand string
	Err     error
}

func (err ErrOperand) Error() string {
	return fmt.Sprintf("'%v' %v", err.Operand, err.Err)
}

func (err ErrOperand) Unwrap() error {
	return err.Err
}

// ErrSyntax locates an assembly error in the source. LineNo is 1-based.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return fmt.Sprintf("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
