// Package testutil provides helpers shared by spark's package tests.
//
// Key components:
//   - Prompter: scripted prompt.Prompter recording every label it was asked
//   - FaultFS: types.FS wrapper injecting errors for chosen paths
//   - NewStore / ReadString: small fixtures around the keyword store and FS
package testutil
