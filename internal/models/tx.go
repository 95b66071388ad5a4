package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// 基础设施级错误（与业务哨兵错误区分，由事务网关统一归类）
var (
	ErrConnection = errors.New("database connection unavailable")
	ErrCommit     = errors.New("transaction commit failed")
	ErrTxTimeout  = errors.New("transaction deadline exceeded")
)

// WithTransaction 在单个事务内执行 fn：正常返回提交，出错回滚，超时回滚。
// timeout 为 0 时不附加截止时间。fn 返回的业务错误原样向上传递，
// 基础设施故障归类为 ErrConnection / ErrCommit / ErrTxTimeout。
func WithTransaction(ctx context.Context, timeout time.Duration, fn func(tx *gorm.DB) error) error {
	if DB == nil {
		return ErrConnection
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := DB.WithContext(ctx).Transaction(fn); err != nil {
		return classifyInfraError(ctx, err)
	}
	return nil
}

// WithConnection 非事务变体，用于单语句读
func WithConnection(ctx context.Context, fn func(db *gorm.DB) error) error {
	if DB == nil {
		return ErrConnection
	}
	if err := fn(DB.WithContext(ctx)); err != nil {
		return classifyInfraError(ctx, err)
	}
	return nil
}

// classifyInfraError 把驱动层故障映射为基础设施哨兵；
// 业务错误（包括 gorm.ErrRecordNotFound）保持原样。
func classifyInfraError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTxTimeout, err)
	}
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, gorm.ErrInvalidDB) {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	// gorm 在提交阶段失败时只返回驱动错误，按消息归类。
	// 提交失败后数据是否落盘不确定，调用方必须按失败处理。
	if strings.Contains(strings.ToLower(err.Error()), "commit") {
		return fmt.Errorf("%w: %v", ErrCommit, err)
	}
	return err
}
