//go:build !purego

package cpu

const forceGenericDefault = false
