package services

import "time"

// SetNow pins the member service clock for deterministic tests.
func SetNow(s *MemberService, fixed time.Time) {
	s.now = func() time.Time { return fixed }
}
