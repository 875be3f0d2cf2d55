package netutil

import (
	"context"
	"fmt"
	"strings"
)

// Subnet is a directly connected network as reported by `ip route`.
type Subnet struct {
	Interface string
	Network   string // CIDR, e.g. 192.168.1.0/24
	IP        string // preferred source address, may be empty
}

// RouteTable is the default route plus the connected subnets by interface.
type RouteTable struct {
	Gateway   string
	Interface string
	Subnets   map[string]Subnet
}

// Routes returns the host's routing summary, or nil when there is no
// default route.
func (t Tools) Routes(ctx context.Context) (*RouteTable, error) {
	out, err := t.Run(ctx, "ip", "route")
	if err != nil {
		return nil, fmt.Errorf("ip route: %w", err)
	}
	return ParseRoutes(string(out)), nil
}

// Routes runs Tools.Routes with the system commands.
func Routes(ctx context.Context) (*RouteTable, error) {
	return DefaultTools().Routes(ctx)
}

// ParseRoutes reads `ip route` output:
//
//	default via 192.168.1.1 dev eth0 proto dhcp metric 100
//	192.168.1.0/24 dev eth0 proto kernel scope link src 192.168.1.28
//
// Only the first default route counts. Lines without a device are skipped.
func ParseRoutes(out string) *RouteTable {
	var table *RouteTable
	subnets := make(map[string]Subnet)

	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if fields[0] == "default" {
			if table == nil {
				table = &RouteTable{
					Gateway:   keyword(fields, "via"),
					Interface: keyword(fields, "dev"),
				}
			}
			continue
		}

		dev := keyword(fields, "dev")
		if dev == "" {
			continue
		}
		subnets[dev] = Subnet{
			Interface: dev,
			Network:   fields[0],
			IP:        keyword(fields, "src"),
		}
	}

	if table == nil {
		return nil
	}
	table.Subnets = subnets
	return table
}

// keyword returns the field following name, "" when absent.
func keyword(fields []string, name string) string {
	for i := 0; i+1 < len(fields); i++ {
		if fields[i] == name {
			return fields[i+1]
		}
	}
	return ""
}
