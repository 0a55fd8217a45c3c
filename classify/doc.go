// Package classify decides what a length-delimited GI payload holds.
//
// The GI format carries no schema, so a length-delimited body may be text, a
// nested message or opaque bytes. [Classify] inspects the bytes and picks one,
// in this order:
//
//  1. an empty payload is [Empty], which the tree decodes as an empty object
//  2. a payload passing [IsText] is [Text]
//  3. a payload passing [IsMessage] is [Message]
//  4. anything else is [Opaque]
//
// Text is tried before message: a payload that is both valid text and well
// framed tag/value pairs is text.
//
// [IsMessage] is shallow. It checks the framing of the immediate tag/value
// pairs and does not look inside nested length-delimited bodies, so a body
// that frames correctly at one level may still turn out to be opaque one
// level down.
//
// Neither check retains or modifies its input.
package classify
