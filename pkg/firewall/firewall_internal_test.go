package firewall

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_addRuleArgs(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		want []string
	}{
		{
			name: "tcp",
			rule: Rule{Name: "BeamMP-Server TCP", Protocol: ProtocolTCP, Port: 30814},
			want: []string{
				"advfirewall", "firewall", "add", "rule",
				"name=BeamMP-Server TCP",
				"dir=in",
				"action=allow",
				"protocol=TCP",
				"localport=30814",
			},
		},
		{
			name: "udp",
			rule: Rule{Name: "BeamMP-Server UDP", Protocol: ProtocolUDP, Port: 30814},
			want: []string{
				"advfirewall", "firewall", "add", "rule",
				"name=BeamMP-Server UDP",
				"dir=in",
				"action=allow",
				"protocol=UDP",
				"localport=30814",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, addRuleArgs(test.rule))
		})
	}
}

func Test_deleteRuleArgs(t *testing.T) {
	args := deleteRuleArgs(Rule{Name: "BeamMP-Server TCP", Protocol: ProtocolTCP, Port: 30814})

	assert.Equal(
		t,
		[]string{"advfirewall", "firewall", "delete", "rule", "name=BeamMP-Server TCP"},
		args,
	)
}
