// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suite

// DaCapoIterations are the iteration counts of the DaCapo 9.12
// benchmarks.
var DaCapoIterations = map[string]int{
	"avrora":     20,
	"batik":      40,
	"eclipse":    Skip,
	"fop":        40,
	"h2":         20,
	"jython":     40,
	"luindex":    15,
	"lusearch":   40,
	"pmd":        30,
	"sunflow":    30,
	"tomcat":     Skip, // broken since 8u92
	"tradebeans": Skip,
	"tradesoap":  Skip,
	"xalan":      20,
}

// ScalaDaCapoIterations are the iteration counts of the Scala DaCapo
// benchmarks.
var ScalaDaCapoIterations = map[string]int{
	"actors":      10,
	"apparat":     5,
	"factorie":    5,
	"kiama":       40,
	"scalac":      20,
	"scaladoc":    15,
	"scalap":      120,
	"scalariform": 30,
	"scalatest":   50,
	"scalaxb":     35,
	"specs":       20,
	"tmt":         12,
}

// SpecJvm2008Benchmarks lists the SPECjvm2008 benchmarks.
// startup.compiler.sunflow and compiler.sunflow time out on JDK 8.
var SpecJvm2008Benchmarks = []string{
	"startup.helloworld",
	"startup.compiler.compiler",
	"startup.compress",
	"startup.crypto.aes",
	"startup.crypto.rsa",
	"startup.crypto.signverify",
	"startup.mpegaudio",
	"startup.scimark.fft",
	"startup.scimark.lu",
	"startup.scimark.monte_carlo",
	"startup.scimark.sor",
	"startup.scimark.sparse",
	"startup.serial",
	"startup.sunflow",
	"startup.xml.transform",
	"startup.xml.validation",
	"compiler.compiler",
	"compress",
	"crypto.aes",
	"crypto.rsa",
	"crypto.signverify",
	"derby",
	"mpegaudio",
	"scimark.fft.large",
	"scimark.lu.large",
	"scimark.sor.large",
	"scimark.sparse.large",
	"scimark.fft.small",
	"scimark.lu.small",
	"scimark.sor.small",
	"scimark.sparse.small",
	"scimark.monte_carlo",
	"serial",
	"sunflow",
	"xml.transform",
	"xml.validation",
}

// RenaissanceBenchmarks lists the Renaissance benchmarks.
var RenaissanceBenchmarks = []string{
	"FindNegativeRare",
	"FindNegative",
	"CharacterHistogram",
	"CharacterHistogramRare",
	"StandardDeviationRare",
	"FoldLeftSum",
	"ForeachSum",
	"FoldLeftSumRare",
	"StandardDeviation",
	"ForeachSumRare",
	"Reduce",
	"Accumulator",
	"SimpleScan",
	"TextSearchRDD",
	"TextSearchDF",
	"WordCount",
	"SortRDD",
	"CharCount",
	"ClassificationDecisionTree",
	"PageRank",
	"AlternatingLeastSquares",
	"LogRegression",
	"KMeansClustering",
	"MultinomialNaiveBayes",
}
