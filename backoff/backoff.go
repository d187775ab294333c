package backoff

import (
	"context"
	"github.com/cenkalti/backoff/v5"
	"github.com/cockroachdb/errors"
	"time"
)

// ErrNoOperation 実行する処理が設定されていない
var ErrNoOperation = errors.New("backoff operation is not set")

type BackoffWrapper[T any] struct {
	ctx       context.Context
	operation backoff.Operation[T]
	options   []backoff.RetryOption
}

// NewBackoff 指数バックオフでリトライする
func NewBackoff[T any](ctx context.Context, initialInterval time.Duration, randomizationFactor float64, multiplier float64, maxTries uint) *BackoffWrapper[T] {
	exponentialBackOff := backoff.NewExponentialBackOff()

	// リトライの初期間隔
	exponentialBackOff.InitialInterval = initialInterval
	// リトライ間隔を決めるランダム値
	exponentialBackOff.RandomizationFactor = randomizationFactor
	// リトライ間隔を決める乗数
	exponentialBackOff.Multiplier = multiplier

	return newWrapper[T](ctx, exponentialBackOff, maxTries)
}

// NewImmediate 待ち時間なしで maxTries 回まで試行する
// 乱数の引き直しのように待っても結果が変わらない処理向け
func NewImmediate[T any](ctx context.Context, maxTries uint) *BackoffWrapper[T] {
	return newWrapper[T](ctx, &backoff.ZeroBackOff{}, maxTries)
}

func newWrapper[T any](ctx context.Context, b backoff.BackOff, maxTries uint) *BackoffWrapper[T] {
	options := []backoff.RetryOption{backoff.WithBackOff(b), backoff.WithMaxTries(maxTries)}

	return &BackoffWrapper[T]{
		ctx:     ctx,
		options: options,
	}
}

func (b *BackoffWrapper[T]) SetDoOperation(o backoff.Operation[T]) {
	b.operation = o
}

func (b *BackoffWrapper[T]) SetNotify(n backoff.Notify) {
	b.options = append(b.options, backoff.WithNotify(n))
}

// Exec 成功するか試行回数を使い切るまで実行する
func (b *BackoffWrapper[T]) Exec() (T, error) {
	if b.operation == nil {
		var zero T
		return zero, ErrNoOperation
	}
	return backoff.Retry(b.ctx, b.operation, b.options...)
}

// Permanent リトライしないエラーとして包む
func Permanent(err error) error {
	return backoff.Permanent(err)
}
