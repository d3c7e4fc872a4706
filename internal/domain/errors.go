package domain

import "errors"

var (
	// ErrEmptyText is returned when an empty string is submitted for
	// encryption or decryption.
	ErrEmptyText = errors.New("text is empty")
	// ErrEmptyPassword is returned when no password was supplied.
	ErrEmptyPassword = errors.New("password is empty")
	// ErrEmptyEffectiveKey indicates the password contains no characters
	// from the cipher alphabet, so no key schedule can be built.
	ErrEmptyEffectiveKey = errors.New("password has no characters from the alphabet")

	// ErrMalformedPayload indicates the payload does not match any known
	// answer-key format.
	ErrMalformedPayload = errors.New("malformed payload")
	// ErrMalformedQuestionCount indicates the question-count field could not be read.
	ErrMalformedQuestionCount = errors.New("malformed question count")
	// ErrMalformedPoints indicates the total-points field could not be read.
	ErrMalformedPoints = errors.New("malformed total points")
	// ErrAnswerCountMismatch indicates the answer run does not cover the
	// declared number of questions.
	ErrAnswerCountMismatch = errors.New("answer count does not match question count")
	// ErrInvalidAnswerLetter indicates an answer character outside A-D.
	ErrInvalidAnswerLetter = errors.New("invalid answer letter")

	// ErrInvalidSummary indicates an encode-time contract violation; this is
	// a caller bug, not bad user input.
	ErrInvalidSummary = errors.New("invalid answer summary")
	// ErrShuffleIntegrity indicates a shuffle changed the option multiset.
	// It is a post-condition check that should never fire.
	ErrShuffleIntegrity = errors.New("shuffle changed the option set")

	// ErrNoQuestions indicates the question source contained no questions.
	ErrNoQuestions = errors.New("no questions found")
	// ErrInvalidQuestionFormat indicates a question block that cannot be parsed.
	ErrInvalidQuestionFormat = errors.New("invalid question format")

	// ErrInvalidConfig indicates missing or inconsistent exam configuration.
	ErrInvalidConfig = errors.New("invalid exam configuration")
)

// IsDecodeFailure reports whether err is one of the recoverable decode-path
// failures. There is no authentication tag on the payload, so all of these
// read as "wrong password or corrupted scan" to the end user.
func IsDecodeFailure(err error) bool {
	for _, target := range []error{
		ErrEmptyText,
		ErrEmptyPassword,
		ErrEmptyEffectiveKey,
		ErrMalformedPayload,
		ErrMalformedQuestionCount,
		ErrMalformedPoints,
		ErrAnswerCountMismatch,
		ErrInvalidAnswerLetter,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
