// Package main runs the codec and generator benchmarks and outputs results to JSON/Markdown.
// Run with: go run ./benchmarks
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BenchmarkResults holds all benchmark data
type BenchmarkResults struct {
	Timestamp   string           `json:"timestamp"`
	Environment Environment      `json:"environment"`
	Suites      map[string]Suite `json:"suites"`
	Summary     Summary          `json:"summary"`
}

type Environment struct {
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	CPU       string `json:"cpu"`
	NumCPU    int    `json:"num_cpu"`
	GoVersion string `json:"go_version"`
}

type Suite struct {
	Package    string      `json:"package"`
	Benchmarks []Benchmark `json:"benchmarks"`
}

type Benchmark struct {
	Name        string  `json:"name"`
	NsPerOp     float64 `json:"ns_per_op"`
	OpsPerSec   float64 `json:"ops_per_sec"`
	BytesPerOp  int64   `json:"bytes_per_op"`
	AllocsPerOp int64   `json:"allocs_per_op"`
}

type Summary struct {
	Generate         float64 `json:"generate_ops_per_sec"`
	GenerateParallel float64 `json:"generate_parallel_ops_per_sec"`
	EncodeNs         float64 `json:"encode_ns"`
	DecodeNs         float64 `json:"decode_ns"`
}

// suites maps a suite name to the package whose benchmarks it runs.
var suites = map[string]string{
	"codec":     "./pkg/base36",
	"generator": "./pkg/cuid",
}

func main() {
	fmt.Println("==========================================")
	fmt.Println("   CUID2 BENCHMARK SUITE")
	fmt.Println("==========================================")
	fmt.Println()

	results := BenchmarkResults{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Environment: Environment{
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			CPU:       getCPUInfo(),
			NumCPU:    runtime.NumCPU(),
			GoVersion: runtime.Version(),
		},
		Suites: make(map[string]Suite),
	}

	for _, name := range suiteNames() {
		pkg := suites[name]
		fmt.Printf("Running %s benchmarks (%s)...\n", name, pkg)
		results.Suites[name] = Suite{Package: pkg, Benchmarks: runBenchmarks(pkg)}
	}

	results.Summary = calculateSummary(results.Suites)

	dir := filepath.Join("benchmarks", "results")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Printf("Error creating %s: %v\n", dir, err)
		os.Exit(1)
	}

	jsonPath := filepath.Join(dir, "latest.json")
	writeJSON(results, jsonPath)
	fmt.Printf("\nJSON results: %s\n", jsonPath)

	mdPath := filepath.Join(dir, "LATEST.md")
	writeMarkdown(results, mdPath)
	fmt.Printf("Markdown results: %s\n", mdPath)

	printSummary(results)
}

func suiteNames() []string {
	names := make([]string, 0, len(suites))
	for name := range suites {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func getCPUInfo() string {
	if runtime.GOOS == "linux" {
		data, err := os.ReadFile("/proc/cpuinfo")
		if err == nil {
			for _, line := range strings.Split(string(data), "\n") {
				if strings.HasPrefix(line, "model name") {
					if _, value, ok := strings.Cut(line, ":"); ok {
						return strings.TrimSpace(value)
					}
				}
			}
		}
	}
	return "unknown"
}

func runBenchmarks(pkg string) []Benchmark {
	cmd := exec.Command("go", "test", "-run=^$", "-bench=.", "-benchtime=2s", "-benchmem", pkg)
	output, _ := cmd.CombinedOutput()

	return parseBenchmarkOutput(string(output))
}

// Pattern: BenchmarkName-N    iterations    ns/op    bytes/op    allocs/op
var benchLine = regexp.MustCompile(`(Benchmark[\w/]+)-\d+\s+(\d+)\s+([\d.]+)\s+ns/op\s+(\d+)\s+B/op\s+(\d+)\s+allocs/op`)

func parseBenchmarkOutput(output string) []Benchmark {
	var benchmarks []Benchmark

	for _, match := range benchLine.FindAllStringSubmatch(output, -1) {
		nsPerOp, _ := strconv.ParseFloat(match[3], 64)
		bytesPerOp, _ := strconv.ParseInt(match[4], 10, 64)
		allocsPerOp, _ := strconv.ParseInt(match[5], 10, 64)

		opsPerSec := 0.0
		if nsPerOp > 0 {
			opsPerSec = 1e9 / nsPerOp
		}

		benchmarks = append(benchmarks, Benchmark{
			Name:        match[1],
			NsPerOp:     nsPerOp,
			OpsPerSec:   opsPerSec,
			BytesPerOp:  bytesPerOp,
			AllocsPerOp: allocsPerOp,
		})
	}

	return benchmarks
}

func calculateSummary(results map[string]Suite) Summary {
	var summary Summary

	for _, b := range results["generator"].Benchmarks {
		switch b.Name {
		case "BenchmarkGenerate":
			summary.Generate = b.OpsPerSec
		case "BenchmarkGenerate_Parallel":
			summary.GenerateParallel = b.OpsPerSec
		}
	}

	for _, b := range results["codec"].Benchmarks {
		switch {
		case strings.HasPrefix(b.Name, "BenchmarkEncode"):
			summary.EncodeNs = b.NsPerOp
		case strings.HasPrefix(b.Name, "BenchmarkDecode"):
			summary.DecodeNs = b.NsPerOp
		}
	}

	return summary
}

func writeJSON(results BenchmarkResults, path string) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling JSON: %v\n", err)
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Printf("Error writing %s: %v\n", path, err)
	}
}

func renderMarkdown(results BenchmarkResults) string {
	var sb strings.Builder
	title := cases.Title(language.English)

	sb.WriteString("# cuid2 Benchmark Results\n\n")
	fmt.Fprintf(&sb, "**Generated**: %s\n\n", results.Timestamp)
	sb.WriteString("## Environment\n\n")
	fmt.Fprintf(&sb, "- **OS**: %s/%s\n", results.Environment.OS, results.Environment.Arch)
	fmt.Fprintf(&sb, "- **CPU**: %s (%d cores)\n", results.Environment.CPU, results.Environment.NumCPU)
	fmt.Fprintf(&sb, "- **Go**: %s\n\n", results.Environment.GoVersion)

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Operation | Result |\n")
	sb.WriteString("|-----------|--------|\n")
	fmt.Fprintf(&sb, "| Generate | %.0f ids/s |\n", results.Summary.Generate)
	fmt.Fprintf(&sb, "| Generate (parallel) | %.0f ids/s |\n", results.Summary.GenerateParallel)
	fmt.Fprintf(&sb, "| Encode 32 bytes | %.0f ns |\n", results.Summary.EncodeNs)
	fmt.Fprintf(&sb, "| Decode | %.0f ns |\n", results.Summary.DecodeNs)
	sb.WriteString("\n")

	names := make([]string, 0, len(results.Suites))
	for name := range results.Suites {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		suite := results.Suites[name]
		fmt.Fprintf(&sb, "## %s (`%s`)\n\n", title.String(name), suite.Package)
		sb.WriteString("| Benchmark | ops/sec | ns/op | B/op | allocs/op |\n")
		sb.WriteString("|-----------|---------|-------|------|----------|\n")
		for _, b := range suite.Benchmarks {
			fmt.Fprintf(&sb, "| %s | %.0f | %.0f | %d | %d |\n",
				b.Name, b.OpsPerSec, b.NsPerOp, b.BytesPerOp, b.AllocsPerOp)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Reproducing\n\n")
	sb.WriteString("```bash\n")
	sb.WriteString("go run ./benchmarks\n")
	sb.WriteString("# Or individual packages:\n")
	sb.WriteString("go test -run='^$' -bench=. -benchtime=2s -benchmem ./pkg/base36\n")
	sb.WriteString("go test -run='^$' -bench=. -benchtime=2s -benchmem ./pkg/cuid\n")
	sb.WriteString("```\n")

	return sb.String()
}

func writeMarkdown(results BenchmarkResults, path string) {
	if err := os.WriteFile(path, []byte(renderMarkdown(results)), 0o644); err != nil {
		fmt.Printf("Error writing %s: %v\n", path, err)
	}
}

func printSummary(results BenchmarkResults) {
	fmt.Println()
	fmt.Println("==========================================")
	fmt.Println("              SUMMARY")
	fmt.Println("==========================================")
	fmt.Printf("Generate:  %.0f ids/s (%.0f ids/s parallel)\n",
		results.Summary.Generate, results.Summary.GenerateParallel)
	fmt.Printf("Encode:    %.0f ns/op\n", results.Summary.EncodeNs)
	fmt.Printf("Decode:    %.0f ns/op\n", results.Summary.DecodeNs)
	fmt.Println("==========================================")
}
