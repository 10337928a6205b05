// Package utils provides common utility functions for the bank-reconciler application.
// It includes loose value conversion for driver and spreadsheet values that doesn't fit
// into domain-specific packages.
package utils
