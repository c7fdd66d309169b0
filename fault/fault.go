// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"github.com/pkg/errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	EncodingError   GenericError
	ExistsError     GenericError
	InvalidError    GenericError
	NotFoundError   GenericError
	ProcessError    GenericError
	QuarantineError GenericError
)

// common errors - keep in alphabetic order
var (
	AccountNotOpened             = InvalidError("Open account to make transaction")
	AccountWithoutBalance        = InvalidError("Account doesn't has balance")
	AlreadyInitialised           = ProcessError("already initialised")
	AssetKindMismatch            = InvalidError("transaction asset does not match its type")
	BlockNotFound                = NotFoundError("block not found")
	BlockOutOfSequence           = InvalidError("block does not follow the last block")
	CannotApplyTransaction       = QuarantineError("Can't apply transaction")
	CannotUndoGenesis            = InvalidError("genesis block cannot be undone")
	DelegateAlreadyRegistered    = InvalidError("Your account are delegate already")
	DelegateNotFound             = NotFoundError("delegate not found")
	DuplicateVote                = InvalidError("Can't verify votes, you already voted for this delegate")
	EmptyScriptInput             = InvalidError("Empty input in transaction")
	EmptyScriptID                = InvalidError("Empty script id in transaction")
	EmptyTransactionAsset        = InvalidError("Empty transaction asset")
	IncorrectDescriptionLength   = InvalidError("Incorrect description length")
	IncorrectDelegateNameLength  = InvalidError("Incorrect delegate username length")
	IncorrectNameLength          = InvalidError("Incorrect name length")
	IncorrectRecipient           = InvalidError("Incorrect recipient")
	IncorrectScriptCodeLength    = InvalidError("Incorrect script code length")
	IncorrectScriptParameters    = EncodingError("Incorrect script parameters json")
	IncorrectScriptParamsLength  = InvalidError("Incorrect script parameters length")
	IncorrectUsernameLength      = InvalidError("Incorrect username length")
	InsufficientBalance          = InvalidError("insufficient balance")
	InvalidAddress               = EncodingError("invalid address")
	InvalidAmount                = InvalidError("Invalid transaction amount")
	InvalidBlockID               = InvalidError("Invalid block id")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidHex                   = EncodingError("invalid hex")
	InvalidIPAddress             = InvalidError("invalid IP address")
	InvalidJSON                  = EncodingError("invalid json")
	InvalidLimit                 = InvalidError("Maximum of limit is 100")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidPrivateKeyFile        = EncodingError("invalid private key file")
	InvalidPublicKey             = EncodingError("Invalid length for signature public key")
	InvalidPublicKeyFile         = EncodingError("invalid public key file")
	InvalidScriptCode            = EncodingError("Transaction script code is not valid")
	InvalidScriptInput           = InvalidError("script input does not match its parameters")
	InvalidSecondSignature       = InvalidError("Can't verify second signature")
	InvalidSecret                = InvalidError("Please, provide valid secret key of your account")
	InvalidSenderPublicKey       = EncodingError("invalid sender public key")
	InvalidSignature             = InvalidError("Can't verify signature")
	InvalidSortField             = InvalidError("Invalid field to sort")
	InvalidTimestamp             = InvalidError("Invalid transaction timestamp")
	InvalidTransactionFee        = InvalidError("Invalid transaction type/fee")
	InvalidTransactionID         = InvalidError("Invalid transaction id")
	InvalidVote                  = InvalidError("invalid vote entry")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingParameters            = InvalidError("missing parameters")
	MissingSecondSecret          = InvalidError("Provide second secret key")
	MissingSecondSignature       = InvalidError("second signature required")
	NameAlreadyRegistered        = InvalidError("The name you entered is already in use. Please try a different name.")
	NotInitialised               = ProcessError("not initialised")
	RateLimiting                 = InvalidError("rate limiting")
	RecipientRequired            = InvalidError("Invalid recipient")
	ScriptNotFound               = NotFoundError("Script not found")
	SecondSignatureAlreadyExists = InvalidError("Account already has a second signature")
	SenderNotFound               = NotFoundError("Can't process transaction, sender not found")
	TooManyDelegates             = InvalidError("Can't verify votes, too many delegates: at most 33 allowed")
	TransactionAlreadyConfirmed  = ExistsError("Can't process transaction, transaction already confirmed")
	TransactionAlreadyExists     = ExistsError("This transaction already exists")
	TransactionInUse             = ProcessError("database transaction already in use")
	TransactionNotStarted        = ProcessError("database transaction not started")
	TransactionNotFound          = NotFoundError("Transaction not found")
	TruncatedRecord              = ProcessError("truncated database record")
	UnknownTransactionType       = InvalidError("Unknown transaction type")
	VoteNotFound                 = InvalidError("Can't verify votes, delegate is not voted for")
	WrongNetworkForBlock         = InvalidError("genesis block does not match configuration")
)

// the error interface methods
func (e GenericError) Error() string    { return string(e) }
func (e EncodingError) Error() string   { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e QuarantineError) Error() string { return string(e) }

// IsErrEncoding - malformed input
func IsErrEncoding(e error) bool { _, ok := errors.Cause(e).(EncodingError); return ok }

// IsErrExists - duplicate or already settled
func IsErrExists(e error) bool { _, ok := errors.Cause(e).(ExistsError); return ok }

// IsErrInvalid - validation failed
func IsErrInvalid(e error) bool { _, ok := errors.Cause(e).(InvalidError); return ok }

// IsErrNotFound - a referenced item does not exist
func IsErrNotFound(e error) bool { _, ok := errors.Cause(e).(NotFoundError); return ok }

// IsErrProcess - internal process error
func IsErrProcess(e error) bool { _, ok := errors.Cause(e).(ProcessError); return ok }

// IsErrQuarantine - transaction was moved to the double spend set
func IsErrQuarantine(e error) bool { _, ok := errors.Cause(e).(QuarantineError); return ok }

// IsRejection - true for errors that leave no state behind and are
// reported to the submitter as a reason string
func IsRejection(e error) bool {
	return IsErrInvalid(e) || IsErrNotFound(e) || IsErrExists(e) || IsErrEncoding(e)
}
