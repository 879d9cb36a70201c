package model

import (
	"errors"
	"fmt"
)

// 错误分类
var (
	// 物性参数非法：密度、粘度、比热容为零或负数，温差退化等
	ErrInvalidInput = errors.New("invalid physical input")
	// 关联式适用条件不满足，例如 Re <= 0
	ErrPrecondition = errors.New("domain precondition violated")
	// 参数表 / 测量表结构错误
	ErrTableShape = errors.New("table shape mismatch")
)

// DomainError 记录出错的计算和对应的物理量
type DomainError struct {
	Func     string
	Quantity string
	Value    float64
	Err      error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s = %g: %v", e.Func, e.Quantity, e.Value, e.Err)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func invalid(fn, quantity string, value float64) error {
	return &DomainError{Func: fn, Quantity: quantity, Value: value, Err: ErrInvalidInput}
}
