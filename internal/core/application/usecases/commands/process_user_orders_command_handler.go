package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"orderprocessing/internal/core/domain/model/order"
	"orderprocessing/internal/core/domain/services"
	"orderprocessing/internal/core/ports"
	"orderprocessing/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrNoOrdersFound is reported when the user has no orders. An empty batch is a failed batch.
var ErrNoOrdersFound = errors.New("no orders found for user")

// OutcomeRecorder observes batch and order outcomes, e.g. for metrics.
type OutcomeRecorder interface {
	ObserveBatch(succeeded bool)
	ObserveOrder(status order.Status)
}

// ProcessUserOrdersCommandHandler runs every order of a user through the type
// processors and the priority rule, then persists the outcome order by order.
//
// Example:
//
//	handler := NewProcessUserOrdersCommandHandler(store, classifier, sink, recorder, logger)
//	cmd, _ := NewProcessUserOrdersCommand(42)
//
//	if !handler.Handle(ctx, cmd) {
//	    // fetch failed, the user had no orders, or the batch hit an unexpected error
//	}
type ProcessUserOrdersCommandHandler struct {
	store      ports.OrderStore
	processors []services.Processor
	priority   services.PriorityRule
	recorder   OutcomeRecorder
	logger     *slog.Logger
}

// NewProcessUserOrdersCommandHandler wires the processors in their fixed order:
// type A export, type B classification, type C flag. recorder and logger may be nil.
func NewProcessUserOrdersCommandHandler(
	store ports.OrderStore,
	classifier ports.Classifier,
	sink ports.ExportSink,
	recorder OutcomeRecorder,
	logger *slog.Logger,
) ProcessUserOrdersCommandHandler {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return ProcessUserOrdersCommandHandler{
		store: store,
		processors: []services.Processor{
			services.NewExportProcessor(sink, nil),
			services.NewClassificationProcessor(classifier),
			services.NewFlagProcessor(),
		},
		priority: services.NewPriorityRule(),
		recorder: recorder,
		logger:   logger.With("component", "process_user_orders"),
	}
}

// Handle processes the user's orders and reports whether the batch succeeded.
//
// The batch fails when the command is invalid, the fetch fails, the user has no
// orders, or anything unexpected happens (including a panic). A store failure
// while persisting one order only marks that order DBError; the batch goes on
// and still succeeds. No error leaves this method.
func (h *ProcessUserOrdersCommandHandler) Handle(ctx context.Context, cmd ProcessUserOrdersCommand) (succeeded bool) {
	logger := h.logger.With("run_id", uuid.NewString(), "user_id", cmd.UserID())

	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "Order batch aborted", "panic", r)
			succeeded = false
		}
		h.recorder.ObserveBatch(succeeded)
	}()

	if err := h.handle(ctx, cmd, logger); err != nil {
		if errors.Is(err, ErrNoOrdersFound) {
			logger.InfoContext(ctx, "Order batch has nothing to process")
		} else {
			logger.WarnContext(ctx, "Order batch failed", "error", err)
		}
		return false
	}

	return true
}

func (h *ProcessUserOrdersCommandHandler) handle(ctx context.Context, cmd ProcessUserOrdersCommand, logger *slog.Logger) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	orders, err := h.store.FetchByUser(ctx, cmd.UserID())
	if err != nil {
		return fmt.Errorf("fetch orders: %w", err)
	}

	if len(orders) == 0 {
		return ErrNoOrdersFound
	}

	for _, o := range orders {
		if err = h.processOrder(ctx, o, logger); err != nil {
			return err
		}
	}

	logger.InfoContext(ctx, "Order batch processed", "orders", len(orders))
	return nil
}

// processOrder applies every rule to a single order and persists the outcome.
func (h *ProcessUserOrdersCommandHandler) processOrder(ctx context.Context, o *order.Order, logger *slog.Logger) error {
	if err := o.Validate(); err != nil {
		return err
	}

	for _, p := range h.processors {
		if err := p.Process(ctx, o); err != nil {
			if !errors.Is(err, errs.ErrExport) {
				return fmt.Errorf("process order %d: %w", o.ID(), err)
			}
			logger.DebugContext(ctx, "Order export failed", "order_id", o.ID(), "error", err)
		}
	}

	if o.Status() == order.New {
		if err := o.SetStatus(order.UnknownType); err != nil {
			return err
		}
	}

	if err := h.priority.Apply(o); err != nil {
		return err
	}

	if _, err := h.store.UpdateStatus(ctx, o.ID(), o.Status(), o.Priority()); err != nil {
		if !errors.Is(err, errs.ErrStore) {
			return fmt.Errorf("update order %d: %w", o.ID(), err)
		}

		logger.DebugContext(ctx, "Order update failed", "order_id", o.ID(), "error", err)
		if err = o.SetStatus(order.DBError); err != nil {
			return err
		}
	}

	h.recorder.ObserveOrder(o.Status())
	return nil
}

type noopRecorder struct{}

func (noopRecorder) ObserveBatch(bool) {}

func (noopRecorder) ObserveOrder(order.Status) {}
