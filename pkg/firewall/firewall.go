// Package firewall manages inbound allow rules for the game server port.
// Rules are idempotent by replacement: any rule carrying one of the
// managed display names is removed before the desired rules are created.
package firewall

import (
	"strconv"
)

const (
	ProtocolTCP = "TCP"
	ProtocolUDP = "UDP"
)

type Rule struct {
	Name     string
	Protocol string
	Port     int
}

func deleteRuleArgs(rule Rule) []string {
	return []string{
		"advfirewall", "firewall", "delete", "rule",
		"name=" + rule.Name,
	}
}

func addRuleArgs(rule Rule) []string {
	return []string{
		"advfirewall", "firewall", "add", "rule",
		"name=" + rule.Name,
		"dir=in",
		"action=allow",
		"protocol=" + rule.Protocol,
		"localport=" + strconv.Itoa(rule.Port),
	}
}
