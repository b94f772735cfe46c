// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import wdsdk "github.com/ashr123/warmest-data/pkg/sdk/go"

// Keep SDK handle in global var.
var sdk wdsdk.SDK

// SetSDK sets warmest-data SDK instance.
func SetSDK(s wdsdk.SDK) {
	sdk = s
}
