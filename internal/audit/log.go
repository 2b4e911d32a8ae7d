// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package audit

import "github.com/developerdao/ddcloud/internal/logging"

func dbLogf(format string, v ...any) {
	logging.Debugf("audit: "+format, v...)
}
