// Package common holds helpers shared by the verifier commands.
//
// OtherInstances scans the process table so a run can warn when another verifier
// is working on the same checkout.
package common
