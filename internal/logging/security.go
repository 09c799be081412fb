// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const securityAppID = "content-service"

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) AuthnFailure(user, reason string) {
	s.l.Warn(
		"user failed to authenticate",
		zap.String("event", "authn_login_fail:"+user),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthzFailure(user, resource string) {
	s.l.Warn(
		"user attempted to access a resource without permission",
		zap.String("event", "authz_fail:"+user+","+resource),
	)
}

func (s *SecurityLogger) AdminAction(user, action, resource string) {
	s.l.Info(
		"privileged action performed",
		zap.String("event", "admin_action:"+user+","+action+","+resource),
	)
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("service started", zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("service stopped", zap.String("event", "sys_shutdown"))
}

func newSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{
		l: l.Named("security").With(
			zap.String("appid", securityAppID),
			zap.String("type", "security"),
		),
	}
}
