// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised         = ExistsError("already initialised")
	ErrAssetAlreadyExists         = ExistsError("asset already exists")
	ErrAssetNotFound              = NotFoundError("asset not found in the vault")
	ErrAssetRecordNotFound        = NotFoundError("asset record not found")
	ErrBalanceOverflow            = ProcessError("balance overflow")
	ErrCannotDecodeAccount        = InvalidError("cannot decode account")
	ErrCannotDecodePrivateKey     = InvalidError("cannot decode private key")
	ErrCertificateFileExists      = ExistsError("certificate file already exists")
	ErrChecksumMismatch           = ProcessError("checksum mismatch")
	ErrConfigurationNotTable      = InvalidError("configuration must return a table")
	ErrCryptoFailed               = ProcessError("cryptographic operation failed")
	ErrCustodyCountOverflow       = ProcessError("custody count overflow")
	ErrCustodyCountUnderflow      = ProcessError("custody count underflow")
	ErrDelegateRequired           = AuthorisationError("derived account requires a delegated authority")
	ErrFeeOverflow                = ProcessError("accrued fee overflow")
	ErrIdentityNameAlreadyExists  = ExistsError("identity name already exists")
	ErrIdentityNameNotFound       = NotFoundError("identity name not found")
	ErrInsufficientBalance        = ProcessError("insufficient balance")
	ErrInvalidAmount              = InvalidError("invalid amount")
	ErrInvalidChain               = InvalidError("invalid chain")
	ErrInvalidCount               = InvalidError("invalid count")
	ErrInvalidCursor              = InvalidError("invalid cursor")
	ErrInvalidIPAddress           = InvalidError("invalid IP address")
	ErrInvalidItem                = InvalidError("invalid item")
	ErrInvalidKeyLength           = InvalidError("invalid key length")
	ErrInvalidKeyType             = InvalidError("invalid key type")
	ErrInvalidLoggerChannel       = InvalidError("invalid logger channel")
	ErrInvalidPasswordLength      = LengthError("password must be at least 8 characters")
	ErrInvalidProgramName         = InvalidError("invalid program name")
	ErrInvalidSignature           = InvalidError("invalid signature")
	ErrInvalidStateRecord         = RecordError("invalid vault state record")
	ErrKeyFileAlreadyExists       = ExistsError("key file already exists")
	ErrMissingParameters          = InvalidError("missing parameters")
	ErrNameTooLong                = LengthError("name too long")
	ErrNameTooShort               = LengthError("name too short")
	ErrNoAssetsAvailable          = ProcessError("no assets available in the vault")
	ErrNoFeeToClaim               = ProcessError("no fee to claim")
	ErrNotAvailableInReadOnlyMode = InvalidError("not available in read-only mode")
	ErrNotAvailableWhenStopped    = InvalidError("not available when stopped")
	ErrNotDigest                  = RecordError("not a digest")
	ErrNotInitialised             = NotFoundError("not initialised")
	ErrNotPrivateKey              = InvalidError("not a private key")
	ErrNotPublicKey               = InvalidError("not a public key")
	ErrNotRecordPack              = RecordError("not a record pack")
	ErrPasswordMismatch           = InvalidError("passwords do not match")
	ErrProgramAlreadyRegistered   = ExistsError("program already registered")
	ErrRateLimiting               = InvalidError("rate limiting")
	ErrRequestAlreadyProcessed    = ExistsError("request already processed")
	ErrRewardUnitMismatch         = InvalidError("reward unit mismatch")
	ErrRewardUnitNotInitialised   = NotFoundError("reward unit not initialised")
	ErrSignatureTooLong           = LengthError("signature too long")
	ErrSupplyExceeded             = ProcessError("maximum supply exceeded")
	ErrSymbolTooLong              = LengthError("symbol too long")
	ErrSymbolTooShort             = LengthError("symbol too short")
	ErrTransactionInUse           = ProcessError("storage transaction already in use")
	ErrURITooLong                 = LengthError("uri too long")
	ErrUnauthorised               = AuthorisationError("unauthorised")
	ErrUnitAlreadyExists          = ExistsError("unit already exists")
	ErrUnitNotFound               = NotFoundError("unit not found")
	ErrUnknownRecord              = RecordError("unknown record")
	ErrWrongNetworkForPublicKey   = InvalidError("wrong network for public key")
	ErrWrongPassword              = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorisationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool        { _, ok := e.(RecordError); return ok }
