// Package flow implements the recommendation pipeline: a fixed sequence of
// steps that turn validated viewing preferences into a model prompt and a
// recommendation text.
//
// The pipeline mirrors a conversation. A [State] starts with the opening
// human message; the four input steps each append one preference statement
// to the transcript; the final suggestion step formats the system prompt,
// performs the single chat completion, and records the model's answer.
//
// Steps are stateless and a [Pipeline] is safe for concurrent use; every
// request runs against its own State.
package flow
