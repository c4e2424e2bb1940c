// Package b64 implements CESR's base64-URL-no-padding text codec and the
// "code alignment" padding scheme that lets a derivation code of arbitrary
// character width share a byte stream with 4-character (quadlet) aligned
// base64 text.
//
// Every other package in this module builds atoms on top of b64: primitive
// bodies, variable-length payloads, and group counters are all base64-URL
// text under the hood.
package b64
