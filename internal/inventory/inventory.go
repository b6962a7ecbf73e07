package inventory

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/omeyang/addrkit/pkg/util/xderive"
)

// Format 表示清单的序列化格式。
type Format string

const (
	// FormatYAML 输出 YAML 文档，带显式的 "---" 与 "..." 标记。
	FormatYAML Format = "yaml"
	// FormatJSON 输出 JSON 文档。
	FormatJSON Format = "json"
)

// Host 是清单中的一台主机。
type Host struct {
	// Name 形如 node_1，序号取自输入记录的位置（从 1 开始）。
	Name string
	// AnsibleHost 是合成出的 IPv6 地址文本。
	AnsibleHost string
	// OriginalMAC 是该主机对应的 MAC 输入原文。
	OriginalMAC string
}

// Inventory 是一组按输入顺序排列的主机。
type Inventory struct {
	Hosts []Host
}

// Build 从批量合成结果构建清单。
//
// 失败的记录以 Warn 日志记录后跳过，后续主机的序号不重排，
// 保证 node_{N} 始终对应输入中的第 N 行。
func Build(results []xderive.Result) *Inventory {
	hosts := make([]Host, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			slog.Warn("inventory: record skipped",
				"index", r.Index, "input", r.Input, "err", r.Err)
			continue
		}
		hosts = append(hosts, Host{
			Name:        "node_" + strconv.Itoa(r.Index+1),
			AnsibleHost: r.Addr.String(),
			OriginalMAC: r.Input,
		})
	}
	return &Inventory{Hosts: hosts}
}

// Len 返回清单中的主机数量。
func (inv *Inventory) Len() int {
	return len(inv.Hosts)
}

// ToMap 返回 all.children.remotes.hosts 层级的嵌套 map，
// 可直接交给 koanf parser 序列化。
func (inv *Inventory) ToMap() map[string]any {
	hosts := make(map[string]any, len(inv.Hosts))
	for _, h := range inv.Hosts {
		hosts[h.Name] = map[string]any{
			"ansible_host": h.AnsibleHost,
			"original_mac": h.OriginalMAC,
		}
	}
	return map[string]any{
		"all": map[string]any{
			"children": map[string]any{
				"remotes": map[string]any{
					"hosts": hosts,
				},
			},
		},
	}
}

// Marshal 按指定格式序列化清单。
func (inv *Inventory) Marshal(format Format) ([]byte, error) {
	parser, err := parserFor(format)
	if err != nil {
		return nil, err
	}

	out, err := parser.Marshal(inv.ToMap())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMarshalFailed, err)
	}

	if format == FormatYAML {
		buf := make([]byte, 0, len(out)+8)
		buf = append(buf, "---\n"...)
		buf = append(buf, out...)
		buf = append(buf, "...\n"...)
		return buf, nil
	}
	return out, nil
}

// Load 解析清单数据并还原主机列表。
// 主机按 node_{N} 的序号排序，非该命名模式的主机按名称排在末尾。
func Load(data []byte, format Format) (*Inventory, error) {
	parser, err := parserFor(format)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	raw, _ := k.Get("all.children.remotes.hosts").(map[string]any)
	hosts := make([]Host, 0, len(raw))
	for name, v := range raw {
		vars, _ := v.(map[string]any)
		host := Host{Name: name}
		if s, ok := vars["ansible_host"].(string); ok {
			host.AnsibleHost = s
		}
		if s, ok := vars["original_mac"].(string); ok {
			host.OriginalMAC = s
		}
		hosts = append(hosts, host)
	}

	sort.Slice(hosts, func(i, j int) bool {
		ni, oki := nodeIndex(hosts[i].Name)
		nj, okj := nodeIndex(hosts[j].Name)
		if oki && okj {
			return ni < nj
		}
		if oki != okj {
			return oki
		}
		return hosts[i].Name < hosts[j].Name
	})

	return &Inventory{Hosts: hosts}, nil
}

// nodeIndex 提取 node_{N} 命名中的序号。
func nodeIndex(name string) (int, bool) {
	suffix, ok := strings.CutPrefix(name, "node_")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parserFor 返回格式对应的 koanf parser。
func parserFor(format Format) (koanf.Parser, error) {
	switch format {
	case FormatYAML:
		return yaml.Parser(), nil
	case FormatJSON:
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
