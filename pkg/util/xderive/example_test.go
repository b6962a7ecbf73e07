package xderive_test

import (
	"context"
	"fmt"

	"github.com/omeyang/addrkit/pkg/util/xaddr"
	"github.com/omeyang/addrkit/pkg/util/xderive"
)

// ExampleMulticastMAC 演示 IPv4 多播地址到 MAC 的映射。
func ExampleMulticastMAC() {
	ip := xaddr.MustParse(xaddr.FamilyIPv4, "239.1.1.1")

	mac, err := xderive.MulticastMAC(ip)
	if err != nil {
		fmt.Println("derive:", err)
		return
	}
	fmt.Println(mac)
	// Output: 01:00:5e:01:01:01
}

// ExampleMulticastMAC_ipv6 演示 IPv6 多播地址到 MAC 的映射。
func ExampleMulticastMAC_ipv6() {
	ip := xaddr.MustParse(xaddr.FamilyIPv6, "ff02:0000:0000:0000:0000:0001:ff00:0001")

	mac, err := xderive.MulticastMAC(ip)
	if err != nil {
		fmt.Println("derive:", err)
		return
	}
	fmt.Println(mac)
	// Output: 33:33:01:ff:00:01
}

// ExampleEUI64 演示从 MAC 与 64 位前缀合成 IPv6 地址。
func ExampleEUI64() {
	addr, err := xderive.EUI64("00:11:22:33:44:55", "2001:db8::")
	if err != nil {
		fmt.Println("derive:", err)
		return
	}
	fmt.Println(addr)
	// Output: 2001:0db8:0000:0000:0211:22ff:fe33:4455
}

// ExampleBatchEUI64 演示批量合成与逐条错误记录。
func ExampleBatchEUI64() {
	macs := []string{"00:11:22:33:44:55", "bogus", "0242.ac11.0002"}

	results, err := xderive.BatchEUI64(context.Background(), macs, "fe80::")
	if err != nil {
		fmt.Println("batch:", err)
		return
	}
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("%d %s: skipped\n", r.Index, r.Input)
			continue
		}
		fmt.Printf("%d %s: %s\n", r.Index, r.Input, r.Addr)
	}
	// Output:
	// 0 00:11:22:33:44:55: fe80:0000:0000:0000:0211:22ff:fe33:4455
	// 1 bogus: skipped
	// 2 0242.ac11.0002: fe80:0000:0000:0000:0042:acff:fe11:0002
}
