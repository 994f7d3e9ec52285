// Package funcs finds placeholder tokens in template text and resolves them
// into the keyword store.
//
// A placeholder is either bare, {{$NAME}}, or function qualified,
// {{$NAME:read}}. Resolution goes through the Executor:
//
//   - a dotted name with a data document configured is looked up as a JSON
//     query, whatever its function
//   - read prompts the user with NAME as the label
//   - bare placeholders with nothing stored resolve to "" and log a warning
//
// Tokens already present in the store are never resolved twice.
package funcs
