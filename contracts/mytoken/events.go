package mytoken

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

const (
	EventTransfer             = "Transfer"
	EventApproval             = "Approval"
	EventOwnershipTransferred = "OwnershipTransferred"
)

// MyTokenTransfer represents a Transfer event raised by the MyToken contract.
type MyTokenTransfer struct {
	From  common.Address
	To    common.Address
	Value *big.Int
	Raw   ethtypes.Log
}

// MyTokenApproval represents an Approval event raised by the MyToken contract.
type MyTokenApproval struct {
	Owner   common.Address
	Spender common.Address
	Value   *big.Int
	Raw     ethtypes.Log
}

// MyTokenOwnershipTransferred represents an OwnershipTransferred event raised by the MyToken contract.
type MyTokenOwnershipTransferred struct {
	PreviousOwner common.Address
	NewOwner      common.Address
	Raw           ethtypes.Log
}

func (t *MyToken) ParseTransfer(log ethtypes.Log) (*MyTokenTransfer, error) {
	event := new(MyTokenTransfer)
	if err := t.contract.UnpackLog(event, EventTransfer, log); err != nil {
		return nil, err
	}
	event.Raw = log
	return event, nil
}

func (t *MyToken) ParseApproval(log ethtypes.Log) (*MyTokenApproval, error) {
	event := new(MyTokenApproval)
	if err := t.contract.UnpackLog(event, EventApproval, log); err != nil {
		return nil, err
	}
	event.Raw = log
	return event, nil
}

func (t *MyToken) ParseOwnershipTransferred(log ethtypes.Log) (*MyTokenOwnershipTransferred, error) {
	event := new(MyTokenOwnershipTransferred)
	if err := t.contract.UnpackLog(event, EventOwnershipTransferred, log); err != nil {
		return nil, err
	}
	event.Raw = log
	return event, nil
}

// receiptLogs returns the logs in receipt emitted by this contract for the named event.
func (t *MyToken) receiptLogs(receipt *ethtypes.Receipt, name string) []ethtypes.Log {
	id := t.abi.Events[name].ID
	var logs []ethtypes.Log
	for _, l := range receipt.Logs {
		if l == nil || l.Address != t.address || len(l.Topics) == 0 || l.Topics[0] != id {
			continue
		}
		logs = append(logs, *l)
	}
	return logs
}

// TransferEvents decodes every Transfer event this contract emitted in receipt.
func (t *MyToken) TransferEvents(receipt *ethtypes.Receipt) ([]*MyTokenTransfer, error) {
	var events []*MyTokenTransfer
	for _, l := range t.receiptLogs(receipt, EventTransfer) {
		ev, err := t.ParseTransfer(l)
		if err != nil {
			return nil, fmt.Errorf("parse transfer log %d: %w", l.Index, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func (t *MyToken) ApprovalEvents(receipt *ethtypes.Receipt) ([]*MyTokenApproval, error) {
	var events []*MyTokenApproval
	for _, l := range t.receiptLogs(receipt, EventApproval) {
		ev, err := t.ParseApproval(l)
		if err != nil {
			return nil, fmt.Errorf("parse approval log %d: %w", l.Index, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func (t *MyToken) OwnershipTransferredEvents(receipt *ethtypes.Receipt) ([]*MyTokenOwnershipTransferred, error) {
	var events []*MyTokenOwnershipTransferred
	for _, l := range t.receiptLogs(receipt, EventOwnershipTransferred) {
		ev, err := t.ParseOwnershipTransferred(l)
		if err != nil {
			return nil, fmt.Errorf("parse ownership log %d: %w", l.Index, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// FilterTransfer returns the Transfer events matching the indexed from/to filters.
// Empty filters match any address.
func (t *MyToken) FilterTransfer(opts *bind.FilterOpts, from, to []common.Address) ([]*MyTokenTransfer, error) {
	var fromRule []any
	for _, item := range from {
		fromRule = append(fromRule, item)
	}
	var toRule []any
	for _, item := range to {
		toRule = append(toRule, item)
	}

	logs, sub, err := t.contract.FilterLogs(opts, EventTransfer, fromRule, toRule)
	if err != nil {
		return nil, err
	}
	defer sub.Unsubscribe()

	var events []*MyTokenTransfer
	appendLog := func(log ethtypes.Log) error {
		ev, err := t.ParseTransfer(log)
		if err != nil {
			return err
		}
		events = append(events, ev)
		return nil
	}
	for {
		select {
		case log := <-logs:
			if err := appendLog(log); err != nil {
				return nil, err
			}
		case err := <-sub.Err():
			if err != nil {
				return nil, err
			}
			// the subscription finishes once every log is queued; drain what is left
			for {
				select {
				case log := <-logs:
					if err := appendLog(log); err != nil {
						return nil, err
					}
				default:
					return events, nil
				}
			}
		}
	}
}
